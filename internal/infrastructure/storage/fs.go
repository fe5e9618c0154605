package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/takuzu/internal/domain"
)

type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func diffDir(d domain.Difficulty) string {
	switch d {
	case domain.Easy:
		return "easy"
	case domain.Hard:
		return "hard"
	default:
		return "medium"
	}
}

var buckets = []struct {
	sub  string
	diff domain.Difficulty
}{
	{"easy", domain.Easy},
	{"medium", domain.Medium},
	{"hard", domain.Hard},
}

func (s *FS) pathFor(id string, d domain.Difficulty) string {
	return filepath.Join(s.dir, diffDir(d), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	target := s.pathFor(p.ID, p.Difficulty)
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
	for _, b := range buckets {
		path := filepath.Join(s.dir, b.sub, id+".json")
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var out domain.Puzzle
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		// Infer difficulty from the folder when the file predates the field.
		if out.Difficulty == 0 {
			out.Difficulty = b.diff
		}
		return &out, nil
	}
	return nil, os.ErrNotExist
}

func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	type m struct {
		ID         string            `json:"id"`
		Name       string            `json:"name,omitempty"`
		Difficulty domain.Difficulty `json:"difficulty"`
		CreatedAt  int64             `json:"createdAt"`
	}

	var out []domain.PuzzleMeta
	for _, b := range buckets {
		ents, err := os.ReadDir(filepath.Join(s.dir, b.sub))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(s.dir, b.sub, e.Name()))
			if err != nil {
				continue
			}
			var mm m
			if err := json.Unmarshal(data, &mm); err != nil || mm.ID == "" {
				continue
			}
			dd := mm.Difficulty
			if dd == 0 {
				dd = b.diff
			}
			out = append(out, domain.PuzzleMeta{
				ID:         mm.ID,
				Name:       mm.Name,
				Difficulty: dd,
				CreatedAt:  mm.CreatedAt,
			})
		}
	}
	return out, nil
}
