package experiments

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// WriteCSV saves pruning records in a timestamped file under dir and returns
// the file's path.
func WriteCSV(dir string, records []Record) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create results directory: %w", err)
	}

	timestamp := time.Now().UTC().Format(time.RFC3339)
	path := filepath.Join(dir, fmt.Sprintf("pruning_%s.csv", timestamp))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"depth", "algorithm", "nodes", "leaves", "cutoffs", "duration_ns", "move"}
	if err := writer.Write(header); err != nil {
		return "", fmt.Errorf("failed to write records header: %w", err)
	}

	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Depth),
			r.Algorithm,
			strconv.FormatInt(r.Nodes, 10),
			strconv.FormatInt(r.Leaves, 10),
			strconv.FormatInt(r.Cutoffs, 10),
			strconv.FormatInt(r.Duration.Nanoseconds(), 10),
			strconv.Itoa(int(r.Move)),
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	return path, writer.Error()
}
