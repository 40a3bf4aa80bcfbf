// Package storage persists puzzle records behind ports.Storage: a JSON
// file tree for build tooling and a SQLite store for larger books.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"svw.info/puzzlebook/internal/domain"
)

// FS stores one JSON file per record under dir/<family>/<difficulty>/.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(p *domain.Puzzle) string {
	return filepath.Join(s.dir, p.Family.String(), p.Difficulty.String(), strings.TrimSpace(p.ID)+".json")
}

func (s *FS) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	target := s.pathFor(p)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	var found *domain.Puzzle
	err := walkRecords(s.dir, func(p *domain.Puzzle) {
		if p.ID == id {
			found = p
		}
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, os.ErrNotExist
	}
	return found, nil
}

func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	err := walkRecords(s.dir, func(p *domain.Puzzle) {
		out = append(out, domain.PuzzleMeta{
			ID:         p.ID,
			Family:     p.Family,
			Difficulty: p.Difficulty,
			CreatedAt:  p.CreatedAt,
		})
	})
	return out, err
}

func (s *FS) All(ctx context.Context) ([]*domain.Puzzle, error) {
	var out []*domain.Puzzle
	err := walkRecords(s.dir, func(p *domain.Puzzle) { out = append(out, p) })
	return out, err
}

// LoadDir reads every JSON record under dir, in stable path order. The
// batch CLI points this at record directories it does not own.
func LoadDir(dir string) ([]*domain.Puzzle, error) {
	var out []*domain.Puzzle
	if err := walkRecords(dir, func(p *domain.Puzzle) { out = append(out, p) }); err != nil {
		return nil, err
	}
	return out, nil
}

func walkRecords(dir string, visit func(*domain.Puzzle)) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == dir {
				return nil
			}
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var p domain.Puzzle
		if err := json.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		if p.ID == "" {
			p.ID = strings.TrimSuffix(d.Name(), ".json")
		}
		visit(&p)
		return nil
	})
}
