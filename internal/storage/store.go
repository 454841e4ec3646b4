package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/hemosim/internal/config"
	"github.com/san-kum/hemosim/internal/engine"
	"github.com/san-kum/hemosim/internal/hemo"
)

// Store persists runs under a data directory, one subdirectory per run
// holding metadata.json and trace.csv.
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
	ID           string          `json:"id"`
	Label        string          `json:"label"`
	Timestamp    time.Time       `json:"timestamp"`
	Scenario     config.Scenario `json:"scenario"`
	StepsPerBeat int             `json:"steps_per_beat"`
	Beats        int             `json:"beats"`
	Dt           float64         `json:"dt"`
	Metrics      hemo.Metrics    `json:"metrics"`
}

func (s *Store) Save(label string, scenario config.Scenario, opts hemo.RunOptions, result *engine.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", label, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:           runID,
		Label:        label,
		Timestamp:    time.Now(),
		Scenario:     scenario,
		StepsPerBeat: len(result.Trace),
		Beats:        opts.Beats,
		Dt:           result.Dt,
		Metrics:      result.Metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "trace.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"phase", "p_art", "p_lv", "volume"}); err != nil {
		return "", err
	}

	for _, sample := range result.Trace {
		row := []string{
			strconv.FormatFloat(sample.CyclePhase, 'f', 6, 64),
			strconv.FormatFloat(sample.ArterialPressure, 'f', 6, 64),
			strconv.FormatFloat(sample.VentricularPressure, 'f', 6, 64),
			strconv.FormatFloat(sample.VentricularVolume, 'f', 6, 64),
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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadTrace(runID string) (hemo.Trace, error) {
	csvPath := filepath.Join(s.baseDir, runID, "trace.csv")
	file, err := os.Open(csvPath)
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
		return hemo.Trace{}, nil
	}

	trace := make(hemo.Trace, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 4 {
			continue
		}
		var vals [4]float64
		ok := true
		for i := 0; i < 4; i++ {
			v, err := strconv.ParseFloat(record[i], 64)
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			continue
		}
		trace = append(trace, hemo.Sample{
			CyclePhase:          vals[0],
			ArterialPressure:    vals[1],
			VentricularPressure: vals[2],
			VentricularVolume:   vals[3],
		})
	}

	return trace, nil
}
