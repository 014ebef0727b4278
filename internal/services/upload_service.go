package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"jobnest_backend/internal/config"
	"jobnest_backend/internal/logger"
	"jobnest_backend/internal/storage"
	"jobnest_backend/pkg/apperrors"
)

type UploadService interface {
	// UploadFile validates and stores a multipart file under the given folder
	// and returns its public URL.
	UploadFile(ctx context.Context, file *multipart.FileHeader, folder string) (string, error)
}

type uploadService struct {
	storage storage.Storage
	cfg     config.UploadConfig
}

func NewUploadService(st storage.Storage, cfg config.UploadConfig) UploadService {
	return &uploadService{storage: st, cfg: cfg}
}

func (s *uploadService) UploadFile(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	if file.Size > s.cfg.MaxSize {
		return "", apperrors.NewBadRequestError(
			fmt.Sprintf("File is too large: maximum allowed size is %d bytes", s.cfg.MaxSize))
	}

	contentType := file.Header.Get("Content-Type")
	if !s.isAllowedType(contentType) {
		return "", apperrors.NewBadRequestError(
			fmt.Sprintf("File type %q is not allowed", contentType))
	}

	src, err := file.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer src.Close()

	path := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), filepath.Ext(file.Filename))
	if err := s.storage.Save(ctx, path, src, contentType); err != nil {
		logger.CtxWithError(ctx, "file upload failed", err, "path", path)
		return "", apperrors.Wrap(err, apperrors.CodeExternalServiceError, "upload",
			"Failed to store the uploaded file", http.StatusBadGateway)
	}

	url, err := s.storage.GetURL(ctx, path)
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "file uploaded", "path", path, "size", file.Size)
	return url, nil
}

func (s *uploadService) isAllowedType(contentType string) bool {
	for _, allowed := range s.cfg.AllowedTypes {
		if strings.EqualFold(contentType, allowed) {
			return true
		}
	}
	return false
}
