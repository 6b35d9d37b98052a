package rewrite

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/t-kuni/gencmake/domain/model/cmakeCache"
	"github.com/t-kuni/gencmake/domain/repository/file"
	"github.com/t-kuni/gencmake/domain/service/backup"
	"github.com/t-kuni/gencmake/util/path"
	"go.trai.ch/zerr"
)

type Options struct {
	CacheFile  string
	SearchPath string
	Marker     string
	Once       bool
	DryRun     bool
	Backup     bool
}

type Result struct {
	Path      string
	ExecTimes int
	Replaced  int
	Skipped   bool
	Before    string
	After     string
	BackupDir string
}

type RewriteService struct {
	fileRepository file.Repository
	backupService  *backup.BackupService
}

func NewRewriteService(fileRepository file.Repository, backupService *backup.BackupService) *RewriteService {
	return &RewriteService{
		fileRepository: fileRepository,
		backupService:  backupService,
	}
}

// Rewrite prepends the marker to the cache file in the working directory and replaces
// every occurrence of opts.SearchPath with the working directory.
func (s *RewriteService) Rewrite(opts Options) (Result, error) {
	if opts.SearchPath == "" {
		return Result{}, ErrEmptySearchPath
	}

	workDir, err := s.fileRepository.Getwd()
	if err != nil {
		return Result{}, errors.Join(ErrWorkdirUnavailable, err)
	}

	cmakePath := filepath.Join(workDir, opts.CacheFile)
	result := Result{Path: cmakePath}

	content, err := s.fileRepository.Read(cmakePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return result, errors.Join(ErrCacheNotFound, zerr.With(err, "path", cmakePath))
		}
		return result, errors.Join(ErrCacheReadFailed, zerr.With(err, "path", cmakePath))
	}

	original := cmakeCache.NewCacheFile(cmakePath, content)
	result.Before = original.Content

	if opts.Once && original.IsAnnotated(opts.Marker) {
		log.WithField("path", cmakePath).Info("marker already present, skipping")
		result.ExecTimes = 1
		result.Skipped = true
		result.After = original.Content
		return result, nil
	}

	rewritten, count := original.Annotate(opts.Marker).ReplacePath(opts.SearchPath, path.BeforeWrite(workDir))
	result.After = rewritten.Content
	result.Replaced = count

	log.WithFields(log.Fields{
		"path":     cmakePath,
		"search":   opts.SearchPath,
		"replaced": count,
	}).Debug("rewrote cache content")

	if opts.DryRun {
		return result, nil
	}

	if opts.Backup {
		dir, err := s.backupService.Save(workDir, filepath.Base(cmakePath), content)
		if err != nil {
			return result, err
		}
		result.BackupDir = dir
		log.WithField("dir", dir).Debug("saved backup")
	}

	if err := s.fileRepository.Write(cmakePath, rewritten.Bytes()); err != nil {
		return result, errors.Join(ErrCacheWriteFailed, zerr.With(err, "path", cmakePath))
	}
	result.ExecTimes++

	return result, nil
}
