package backup

import (
	"errors"
	"path/filepath"

	"github.com/t-kuni/gencmake/domain/repository/file"
	"github.com/t-kuni/gencmake/domain/system/ksuid"
	"github.com/t-kuni/gencmake/domain/system/timer"
	"go.trai.ch/zerr"
)

var ErrBackupFailed = zerr.New("failed to back up cache file")

type BackupService struct {
	fileRepository file.Repository
	timer          timer.ITimer
	ksuid          ksuid.IKsuid
}

func NewBackupService(fileRepository file.Repository, timer timer.ITimer, ksuid ksuid.IKsuid) *BackupService {
	return &BackupService{
		fileRepository: fileRepository,
		timer:          timer,
		ksuid:          ksuid,
	}
}

func HistoryDir(rootDir string) string {
	return filepath.Join(rootDir, ".gencmake", "history")
}

// Save stores content under <rootDir>/.gencmake/history/<ksuid>/<name> next to an empty timestamp file
// and returns the created directory.
func (s *BackupService) Save(rootDir, name string, content []byte) (string, error) {
	dir := filepath.Join(HistoryDir(rootDir), s.ksuid.New())
	if err := s.fileRepository.MkdirAll(dir); err != nil {
		return "", errors.Join(ErrBackupFailed, zerr.With(err, "dir", dir))
	}

	timeFile := filepath.Join(dir, s.timer.Now().Format("2006-01-02T15:04:05"))
	if err := s.fileRepository.Write(timeFile, []byte{}); err != nil {
		return "", errors.Join(ErrBackupFailed, zerr.With(err, "path", timeFile))
	}

	dest := filepath.Join(dir, name)
	if err := s.fileRepository.Write(dest, content); err != nil {
		return "", errors.Join(ErrBackupFailed, zerr.With(err, "path", dest))
	}

	return dir, nil
}
