// snapshot carga los datos de demostración en un store en memoria y vuelca el
// snapshot resultante como JSON (mismo formato que GET /api/snapshot).
//
// Uso: go run ./cmd/snapshot [ruta/salida.json]
// Sin argumento escribe en stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jhoicas/TrainOps-api/internal/application/dto"
	"github.com/jhoicas/TrainOps-api/internal/application/store"
	"github.com/jhoicas/TrainOps-api/internal/infrastructure/memory"
	"github.com/jhoicas/TrainOps-api/pkg/logger"
)

func main() {
	log := logger.New(logger.Config{Env: "development", Level: "warn", Output: os.Stderr})

	s := store.NewStore(memory.NewTxRunner(), log.Component("store"))
	directorID, err := store.SeedDemo(context.Background(), s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}

	var out io.Writer = os.Stdout
	if len(os.Args) > 1 {
		path := os.Args[1]
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "crear directorio: %v\n", err)
			os.Exit(1)
		}
		f, err := os.Create(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "crear archivo: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dto.NewSnapshotResponse(s.Snapshot())); err != nil {
		fmt.Fprintf(os.Stderr, "escribir snapshot: %v\n", err)
		os.Exit(1)
	}
	if len(os.Args) > 1 {
		fmt.Fprintf(os.Stderr, "Snapshot escrito en %s (director: %s)\n", os.Args[1], directorID)
	}
}
