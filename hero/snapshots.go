package hero

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/they4kman/heromaze/maze"
)

// SaveSnapshot writes snapshot into dir, creating dir if needed, and returns
// the path of the new file
func SaveSnapshot(dir string, snapshot *maze.Snapshot, t time.Time) (string, error) {
	stat, err := os.Stat(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("checking snapshot dir: %w", err)
		}
		if err := os.MkdirAll(dir, 0777); err != nil {
			return "", fmt.Errorf("creating snapshot dir: %w", err)
		}
	} else if !stat.Mode().IsDir() {
		return "", fmt.Errorf("%s is not a directory; cannot save snapshots to it", dir)
	}

	serialized, err := snapshot.Serialize()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, snapshotFilename(snapshot, t))
	if err := ioutil.WriteFile(path, []byte(serialized), 0666); err != nil {
		return "", fmt.Errorf("writing snapshot: %w", err)
	}
	return path, nil
}

func snapshotFilename(snapshot *maze.Snapshot, t time.Time) string {
	return fmt.Sprintf("%s_%dx%d_%d.yaml", t.Format("20060102_150405"), snapshot.Cols, snapshot.Rows, snapshot.Seed)
}

func LoadSnapshotFile(path string) (*maze.Snapshot, error) {
	in, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return maze.LoadSnapshot(string(in))
}
