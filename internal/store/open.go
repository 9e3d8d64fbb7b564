package store

import "fmt"

// Open returns the backend named by kind: "sqlite" (dbPath), "file" (dir)
// or "memory".
func Open(kind, dbPath, dir string) (Store, error) {
	switch kind {
	case "", "sqlite":
		return OpenSQLite(dbPath)
	case "file":
		return NewFile(dir)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q", kind)
	}
}
