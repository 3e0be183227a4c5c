// Package service 包含了应用的业务逻辑层。
package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"grc-track-go/internal/config"
	"grc-track-go/internal/model"
	"grc-track-go/internal/repository"
	"grc-track-go/pkg/log"
	"grc-track-go/pkg/storage"
	"grc-track-go/pkg/token"

	"gorm.io/gorm"
)

// FileInput 是客户端提交的单个附件载荷。
// Data 是 base64 编码的文件内容，允许带 data-URI 前缀。
type FileInput struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
	Data string `json:"data"`
}

// UploadedFile 是上传成功后返回给客户端的附件记录。
type UploadedFile struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Size     int64           `json:"size"`
	Path     string          `json:"path"`
	Uploaded model.LocalTime `json:"uploaded"`
}

// FileService 接口定义了附件流水线相关的业务操作。
type FileService interface {
	// Upload 依次处理一批附件：解码、落盘、写元数据。
	// 批次内某个文件失败时，之前已写入的文件不回滚。
	Upload(claims *token.CustomClaims, deptID, reqID uint, files []FileInput) ([]UploadedFile, error)
	// Delete 删除一条附件元数据。磁盘上的文件保留。
	Delete(claims *token.CustomClaims, deptID, reqID uint, fileID string) error
	// PresignedURL 为已镜像到对象存储的附件签发临时下载链接。
	PresignedURL(ctx context.Context, claims *token.CustomClaims, deptID, reqID uint, fileID string) (string, error)
}

// fileService 是 FileService 接口的实现。
type fileService struct {
	departmentRepo  repository.DepartmentRepository
	requirementRepo repository.RequirementRepository
	fileRepo        repository.FileRepository
	folderRepo      repository.FolderConfigRepository
	activityService ActivityService
	storageCfg      config.StorageConfig
	minioCfg        config.MinIOConfig
}

// NewFileService 创建一个新的 FileService 实例。
func NewFileService(
	departmentRepo repository.DepartmentRepository,
	requirementRepo repository.RequirementRepository,
	fileRepo repository.FileRepository,
	folderRepo repository.FolderConfigRepository,
	activityService ActivityService,
	storageCfg config.StorageConfig,
	minioCfg config.MinIOConfig,
) FileService {
	return &fileService{
		departmentRepo:  departmentRepo,
		requirementRepo: requirementRepo,
		fileRepo:        fileRepo,
		folderRepo:      folderRepo,
		activityService: activityService,
		storageCfg:      storageCfg,
		minioCfg:        minioCfg,
	}
}

// illegalPathChars 覆盖 Windows 与 POSIX 下文件名里的非法字符及控制字符。
var illegalPathChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// sanitizeDepartmentName 把部门名转换成可以安全用作目录名的形式：
// 去掉非法字符，去除首尾空白，把连续空白折叠为下划线。
func sanitizeDepartmentName(name string) string {
	cleaned := illegalPathChars.ReplaceAllString(name, "")
	cleaned = strings.TrimSpace(cleaned)
	return strings.Join(strings.Fields(cleaned), "_")
}

// decodeFilePayload 去掉可选的 data-URI 前缀后解码 base64 载荷。
func decodeFilePayload(data string) ([]byte, error) {
	if idx := strings.Index(data, ","); idx >= 0 {
		data = data[idx+1:]
	}
	return base64.StdEncoding.DecodeString(data)
}

// newFileID 生成形如 file_<毫秒时间戳>_<随机串> 的不透明附件标识。
// 碰撞概率可以忽略，但不做写前查重。
func newFileID() string {
	return fmt.Sprintf("file_%d_%s", time.Now().UnixMilli(), token.GenerateRandomString(5))
}

// resolveTargetDir 解析本批附件的落盘目录：
// 部门配置了目录时用 <配置目录>/<需求ID>/，否则退回 <默认根>/<净化后的部门名>/<需求ID>/。
func (s *fileService) resolveTargetDir(dept *model.Department, reqID uint) string {
	cfg, err := s.folderRepo.FindByDepartment(dept.ID)
	if err == nil && cfg.Path != "" {
		return filepath.Join(cfg.Path, fmt.Sprintf("%d", reqID))
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Warnf("[FileService] 查询部门 %d 的目录配置失败，使用默认目录: %v", dept.ID, err)
	}

	deptName := sanitizeDepartmentName(dept.Name)
	if deptName == "" {
		deptName = fmt.Sprintf("department_%d", dept.ID)
	}
	return filepath.Join(s.storageCfg.DefaultRoot, deptName, fmt.Sprintf("%d", reqID))
}

// checkUploadPreconditions 校验部门、需求存在性和调用方权限，返回部门记录。
func (s *fileService) checkUploadPreconditions(claims *token.CustomClaims, deptID, reqID uint) (*model.Department, error) {
	dept, err := s.departmentRepo.FindByID(deptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}

	if _, err := s.requirementRepo.FindByIDAndDepartment(reqID, deptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequirementNotFound
		}
		return nil, err
	}

	if err := checkDepartmentScope(claims, deptID); err != nil {
		return nil, err
	}
	return dept, nil
}

// Upload 依次处理一批附件。
func (s *fileService) Upload(claims *token.CustomClaims, deptID, reqID uint, files []FileInput) ([]UploadedFile, error) {
	dept, err := s.checkUploadPreconditions(claims, deptID, reqID)
	if err != nil {
		return nil, err
	}

	targetDir := s.resolveTargetDir(dept, reqID)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return nil, fmt.Errorf("创建附件目录失败 %s: %w", targetDir, err)
	}
	log.Infof("[FileService] 部门 %d 需求 #%d 的附件目录: %s", deptID, reqID, targetDir)

	uploaded := make([]UploadedFile, 0, len(files))
	for _, in := range files {
		if in.Name == "" || in.Data == "" {
			return nil, ErrInvalidFilesPayload
		}

		// 文件名只保留基名，路径穿越成分被剥离而不是拒绝
		safeName := filepath.Base(in.Name)
		payload, err := decodeFilePayload(in.Data)
		if err != nil {
			return nil, ErrInvalidFilesPayload
		}

		filePath := filepath.Join(targetDir, safeName)
		if err := os.WriteFile(filePath, payload, 0o644); err != nil {
			// 批次内之前已写入的文件保持原样，由调用方决定是否重试整批
			return nil, fmt.Errorf("写入附件失败 %s: %w", filePath, err)
		}

		if storage.Enabled() {
			objectName := fmt.Sprintf("%d/%d/%s", deptID, reqID, safeName)
			if err := storage.PutObjectBytes(context.Background(), s.minioCfg.BucketName, objectName, payload, in.Type); err != nil {
				// 对象存储只是镜像，失败不阻断本地上传
				log.Warnf("[FileService] 镜像附件到对象存储失败 %s: %v", objectName, err)
			}
		}

		record := &model.File{
			ID:            newFileID(),
			RequirementID: reqID,
			DepartmentID:  deptID,
			Name:          safeName,
			Type:          in.Type,
			Size:          in.Size,
			Path:          filePath,
		}
		if err := s.fileRepo.Create(record); err != nil {
			return nil, err
		}

		log.Infof("[FileService] 附件已写入: %s (%d 字节)", filePath, len(payload))
		uploaded = append(uploaded, UploadedFile{
			ID:       record.ID,
			Name:     record.Name,
			Type:     record.Type,
			Size:     record.Size,
			Path:     record.Path,
			Uploaded: model.LocalTime(time.Now()),
		})
	}

	s.activityService.Record(fmt.Sprintf("Uploaded %d file(s) for requirement #%d", len(files), reqID), &deptID)
	return uploaded, nil
}

// Delete 删除一条附件元数据记录。
// 磁盘上的文件（以及对象存储镜像）有意保留，见设计文档。
func (s *fileService) Delete(claims *token.CustomClaims, deptID, reqID uint, fileID string) error {
	if err := checkDepartmentScope(claims, deptID); err != nil {
		return err
	}

	file, err := s.fileRepo.FindByID(fileID, reqID, deptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFileNotFound
		}
		return err
	}

	if err := s.fileRepo.Delete(fileID, reqID, deptID); err != nil {
		return err
	}

	s.activityService.Record(fmt.Sprintf("Deleted file %q from requirement #%d", file.Name, reqID), &deptID)
	return nil
}

// PresignedURL 为附件的对象存储镜像签发 1 小时有效的下载链接。
func (s *fileService) PresignedURL(ctx context.Context, claims *token.CustomClaims, deptID, reqID uint, fileID string) (string, error) {
	if err := checkDepartmentScope(claims, deptID); err != nil {
		return "", err
	}
	if !storage.Enabled() {
		return "", ErrObjectStorageDisabled
	}

	file, err := s.fileRepo.FindByID(fileID, reqID, deptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrFileNotFound
		}
		return "", err
	}

	objectName := fmt.Sprintf("%d/%d/%s", deptID, reqID, file.Name)
	return storage.GetPresignedURL(s.minioCfg.BucketName, objectName, time.Hour)
}
