// Package storage persists completed runs for later listing, plotting, and
// export. Each run gets its own directory with metadata.json and a
// trajectory CSV. Live simulation state is never persisted; a stored run is
// an immutable record of one finished headless run.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/chargesim/internal/engine"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Preset      string             `json:"preset"`
	Timestamp   time.Time          `json:"timestamp"`
	Seed        int64              `json:"seed"`
	Dt          float64            `json:"dt"`
	Steps       int                `json:"steps"`
	K           float64            `json:"k"`
	MinDistance float64            `json:"min_distance"`
	Integrator  string             `json:"integrator"`
	Particles   int                `json:"particles"`
	Metrics     map[string]float64 `json:"metrics"`
}

func (s *Store) Save(meta RunMetadata, rec *engine.Recording) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Preset, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	if len(rec.Positions) > 0 {
		meta.Particles = len(rec.Positions[0])
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(rec.Positions) == 0 {
		return runID, nil
	}

	n := len(rec.Positions[0])
	header := []string{"time"}
	for i := 0; i < n; i++ {
		header = append(header,
			fmt.Sprintf("p%d_x", i), fmt.Sprintf("p%d_y", i),
			fmt.Sprintf("p%d_z", i), fmt.Sprintf("p%d_active", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for step := range rec.Positions {
		row := []string{strconv.FormatFloat(rec.Times[step], 'f', 6, 64)}
		for i := 0; i < n; i++ {
			pos := rec.Positions[step][i]
			active := "0"
			if rec.Active[step][i] {
				active = "1"
			}
			row = append(row,
				strconv.FormatFloat(pos.X, 'f', 6, 64),
				strconv.FormatFloat(pos.Y, 'f', 6, 64),
				strconv.FormatFloat(pos.Z, 'f', 6, 64),
				active)
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadRecording reads the trajectory CSV of a stored run back into memory.
func (s *Store) LoadRecording(runID string) (*engine.Recording, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return &engine.Recording{}, nil
	}

	n := (len(records[0]) - 1) / 4
	rec := &engine.Recording{}

	for _, record := range records[1:] {
		if len(record) != 1+4*n {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}

		pos := make([]engine.Vec3, n)
		act := make([]bool, n)
		for i := 0; i < n; i++ {
			x, _ := strconv.ParseFloat(record[1+i*4], 64)
			y, _ := strconv.ParseFloat(record[2+i*4], 64)
			z, _ := strconv.ParseFloat(record[3+i*4], 64)
			pos[i] = engine.Vec3{X: x, Y: y, Z: z}
			act[i] = record[4+i*4] == "1"
		}

		rec.Times = append(rec.Times, t)
		rec.Positions = append(rec.Positions, pos)
		rec.Active = append(rec.Active, act)
	}

	return rec, nil
}
