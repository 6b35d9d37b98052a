package configFindService

import (
	"path/filepath"

	"github.com/t-kuni/gencmake/util/path"
	"go.trai.ch/zerr"
)

var ErrConfigNotFound = zerr.New("gencmake.yml or gencmake.yaml not found")

type ConfigFindService struct {
	fileRepository FileRepository
}

type FileRepository interface {
	Getwd() (string, error)
	Exists(path string) bool
}

func NewConfigFindService(fileRepository FileRepository) *ConfigFindService {
	return &ConfigFindService{
		fileRepository: fileRepository,
	}
}

// FindConfig walks up from the working directory and returns the first gencmake.yml or gencmake.yaml.
func (s *ConfigFindService) FindConfig() (string, error) {
	currentDir, err := s.fileRepository.Getwd()
	if err != nil {
		return "", err
	}

	currentDir, err = path.AfterGetAbsPath(currentDir)
	if err != nil {
		return "", err
	}

	for {
		ymlPath := filepath.Join(currentDir, "gencmake.yml")
		yamlPath := filepath.Join(currentDir, "gencmake.yaml")

		if s.fileRepository.Exists(ymlPath) {
			return ymlPath, nil
		}
		if s.fileRepository.Exists(yamlPath) {
			return yamlPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", ErrConfigNotFound
}
