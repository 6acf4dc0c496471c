package drivestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

const folderMimeType = "application/vnd.google-apps.folder"

// Client adalah implementasi Store di atas Google Drive API v3.
// Semua folder karyawan dibuat di bawah satu root folder HR.
type Client struct {
	svc          *drive.Service
	rootFolderID string
	logger       *zap.Logger
}

func NewClient(svc *drive.Service, rootFolderID string, logger ...*zap.Logger) *Client {
	l := zap.L().Named("drivestore.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("drivestore.client")
	}
	return &Client{svc: svc, rootFolderID: rootFolderID, logger: l}
}

func (c *Client) CreateEmployeeFolders(ctx context.Context, email string) (FolderTree, error) {
	baseID, err := c.createFolder(ctx, c.rootFolderID, email)
	if err != nil {
		return FolderTree{}, fmt.Errorf("create base folder for %s: %w", email, err)
	}

	photoID, err := c.createFolder(ctx, baseID, ProfilePhotoFolder)
	if err != nil {
		// Folder dasar sudah terlanjur dibuat; tidak di-rollback
		return FolderTree{}, fmt.Errorf("create photo folder for %s: %w", email, err)
	}

	c.logger.Info("employee folders created",
		zap.String("email", email),
		zap.String("base_folder_id", baseID),
		zap.String("photo_folder_id", photoID),
	)
	return FolderTree{BaseID: baseID, PhotoID: photoID}, nil
}

func (c *Client) Upload(ctx context.Context, folderID, name, mimeType string, content io.Reader) (string, error) {
	meta := &drive.File{
		Name:    name,
		Parents: []string{folderID},
	}
	f, err := c.svc.Files.Create(meta).
		Media(content, googleapi.ContentType(mimeType)).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("drive upload %s: %w", name, err)
	}
	return f.Id, nil
}

func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	err := c.svc.Files.Delete(fileID).Context(ctx).Do()
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("drive delete file %s: %w", fileID, err)
	}
	return nil
}

// DeleteFolder menghapus folder; Drive menghapus seluruh isinya sekaligus.
func (c *Client) DeleteFolder(ctx context.Context, folderID string) error {
	err := c.svc.Files.Delete(folderID).Context(ctx).Do()
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("drive delete folder %s: %w", folderID, err)
	}
	return nil
}

func (c *Client) RenameFolder(ctx context.Context, folderID, newName string) error {
	_, err := c.svc.Files.Update(folderID, &drive.File{Name: newName}).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("drive rename folder %s: %w", folderID, err)
	}
	return nil
}

func (c *Client) GetOrCreateSubfolder(ctx context.Context, parentID, name string) (string, error) {
	query := fmt.Sprintf(
		"name = '%s' and '%s' in parents and mimeType = '%s' and trashed = false",
		escapeQueryValue(name), escapeQueryValue(parentID), folderMimeType,
	)
	list, err := c.svc.Files.List().
		Q(query).
		Fields("files(id)").
		PageSize(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("drive find subfolder %q: %w", name, err)
	}
	if len(list.Files) > 0 {
		return list.Files[0].Id, nil
	}

	return c.createFolder(ctx, parentID, name)
}

func (c *Client) Download(ctx context.Context, fileID string) (File, error) {
	meta, err := c.svc.Files.Get(fileID).
		Fields("mimeType", "name").
		Context(ctx).
		Do()
	if err != nil {
		return File{}, fmt.Errorf("drive file metadata %s: %w", fileID, err)
	}

	mimeType := meta.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	resp, err := c.svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return File{}, fmt.Errorf("drive download %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return File{}, fmt.Errorf("drive read %s: %w", fileID, err)
	}

	return File{Content: content, MimeType: mimeType}, nil
}

func (c *Client) createFolder(ctx context.Context, parentID, name string) (string, error) {
	meta := &drive.File{
		Name:     name,
		MimeType: folderMimeType,
		Parents:  []string{parentID},
	}
	f, err := c.svc.Files.Create(meta).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return f.Id, nil
}

func isNotFound(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}

// escapeQueryValue meng-escape single quote untuk klausa query Drive.
func escapeQueryValue(v string) string {
	return strings.ReplaceAll(v, `'`, `\'`)
}
