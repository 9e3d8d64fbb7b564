// apps/go-solver/assets/embed.go
//
// Embedded default French word list (mots.txt): one word per line, any
// casing and accents, '#' lines are comments. Parsing and normalization
// belong to the words package.

package assets

import "embed"

// WordFile is the name of the word list inside FS.
const WordFile = "mots.txt"

//go:embed mots.txt
var FS embed.FS
