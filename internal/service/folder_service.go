// Package service 包含了应用的业务逻辑层。
package service

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"grc-track-go/internal/model"
	"grc-track-go/internal/repository"

	"gorm.io/gorm"
)

// FolderConfigInput 定义了目录配置更新的请求体。
// 指针字段区分“未提交”和“提交了空值”：只有提交的字段会被写入。
type FolderConfigInput struct {
	Path      *string `json:"path"`
	SharedURL *string `json:"sharedUrl"`
}

// FileSaveResult 是写盘探测接口的响应结构。
type FileSaveResult struct {
	Success bool            `json:"success"`
	Path    string          `json:"path"`
	Size    int64           `json:"size"`
	Created model.LocalTime `json:"created"`
}

// FolderService 接口定义了部门附件目录配置相关的业务操作。
type FolderService interface {
	// GetAll 返回按部门 ID 组织的全部目录配置。
	GetAll() (map[uint]model.FolderConfig, error)
	// Upsert 创建或更新某部门的目录配置，只应用提交的字段。
	Upsert(deptID uint, in FolderConfigInput) (*model.FolderConfig, error)
	// BulkConfigure 批量写入部门目录映射，全部标记为已配置。
	BulkConfigure(folders map[uint]string) (int, error)
	// TestFileSave 向指定路径写入探测文件，验证配置的目录可写。
	TestFileSave(path, content string) (*FileSaveResult, error)
}

// folderService 是 FolderService 接口的实现。
type folderService struct {
	folderRepo repository.FolderConfigRepository
}

// NewFolderService 创建一个新的 FolderService 实例。
func NewFolderService(folderRepo repository.FolderConfigRepository) FolderService {
	return &folderService{folderRepo: folderRepo}
}

// GetAll 返回按部门 ID 组织的全部目录配置。
func (s *folderService) GetAll() (map[uint]model.FolderConfig, error) {
	configs, err := s.folderRepo.FindAll()
	if err != nil {
		return nil, err
	}

	result := make(map[uint]model.FolderConfig, len(configs))
	for _, cfg := range configs {
		result[cfg.DepartmentID] = cfg
	}
	return result, nil
}

// Upsert 创建或更新某部门的目录配置。
// configured 的含义：路径或共享链接至少有一个非空。
func (s *folderService) Upsert(deptID uint, in FolderConfigInput) (*model.FolderConfig, error) {
	configured := (in.Path != nil && *in.Path != "") || (in.SharedURL != nil && *in.SharedURL != "")

	_, err := s.folderRepo.FindByDepartment(deptID)
	switch {
	case err == nil:
		fields := map[string]interface{}{
			"configured": configured,
			"updated_at": time.Now(),
		}
		if in.Path != nil {
			fields["path"] = *in.Path
		}
		if in.SharedURL != nil {
			fields["shared_url"] = *in.SharedURL
		}
		if err := s.folderRepo.UpdateFields(deptID, fields); err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		cfg := &model.FolderConfig{
			DepartmentID: deptID,
			Configured:   configured,
		}
		if in.Path != nil {
			cfg.Path = *in.Path
		}
		if in.SharedURL != nil {
			cfg.SharedURL = *in.SharedURL
		}
		if err := s.folderRepo.Create(cfg); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s.folderRepo.FindByDepartment(deptID)
}

// BulkConfigure 批量写入部门目录映射。
func (s *folderService) BulkConfigure(folders map[uint]string) (int, error) {
	for deptID, folderPath := range folders {
		_, err := s.folderRepo.FindByDepartment(deptID)
		switch {
		case err == nil:
			fields := map[string]interface{}{
				"path":       folderPath,
				"configured": true,
				"updated_at": time.Now(),
			}
			if err := s.folderRepo.UpdateFields(deptID, fields); err != nil {
				return 0, err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			cfg := &model.FolderConfig{
				DepartmentID: deptID,
				Path:         folderPath,
				Configured:   true,
			}
			if err := s.folderRepo.Create(cfg); err != nil {
				return 0, err
			}
		default:
			return 0, err
		}
	}
	return len(folders), nil
}

// TestFileSave 向指定路径写入探测文件并返回其元信息。
func (s *folderService) TestFileSave(path, content string) (*FileSaveResult, error) {
	if content == "" {
		content = "Test file content"
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	return &FileSaveResult{
		Success: true,
		Path:    path,
		Size:    info.Size(),
		Created: model.LocalTime(info.ModTime()),
	}, nil
}
