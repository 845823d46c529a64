package job

import (
	"os"
	"path/filepath"

	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/config"
	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/logger"
	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/util/common"
)

// SnapshotJob copies the JSON collection documents into the snapshot
// folder. The flat-file store has no journal, so the daily copy is the
// only recovery point after a corrupt or clobbered document.
type SnapshotJob struct{}

func NewSnapshotJob() *SnapshotJob {
	return new(SnapshotJob)
}

// Here Run is an interface method of the cron Job interface
func (j *SnapshotJob) Run() {
	defer common.Recover("snapshot job panicked")

	dataDir := config.GetDataFolder()
	snapshotDir := config.GetSnapshotFolder()

	if err := os.MkdirAll(snapshotDir, 0o750); err != nil {
		logger.Warning("snapshot job err:", err)
		return
	}

	documents, err := filepath.Glob(filepath.Join(dataDir, "*.json"))
	if err != nil {
		logger.Warning("snapshot job err:", err)
		return
	}

	for _, document := range documents {
		data, err := os.ReadFile(document)
		if err != nil {
			logger.Warning("snapshot job err:", err)
			continue
		}
		target := filepath.Join(snapshotDir, filepath.Base(document))
		if err := os.WriteFile(target, data, 0o640); err != nil {
			logger.Warning("snapshot job err:", err)
		}
	}
	logger.Debugf("snapshot job copied %d documents", len(documents))
}
