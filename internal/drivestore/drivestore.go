package drivestore

import (
	"context"
	"io"
)

// ProfilePhotoFolder adalah nama subfolder foto di dalam folder karyawan.
const ProfilePhotoFolder = "Profile Photo"

// FolderTree adalah hasil pembuatan struktur folder seorang karyawan.
type FolderTree struct {
	BaseID  string
	PhotoID string
}

// File adalah isi file hasil download beserta MIME type-nya.
type File struct {
	Content  []byte
	MimeType string
}

// Store is the file-store contract the services consume. The real
// implementation is Client over Google Drive; tests use fakes.
type Store interface {
	// CreateEmployeeFolders membuat folder dasar atas nama email karyawan
	// plus subfolder "Profile Photo" di dalamnya.
	CreateEmployeeFolders(ctx context.Context, email string) (FolderTree, error)

	// Upload streams a file into the target folder and returns its file ID.
	Upload(ctx context.Context, folderID, name, mimeType string, content io.Reader) (string, error)

	// DeleteFile removes a file; a missing file is not an error.
	DeleteFile(ctx context.Context, fileID string) error

	// DeleteFolder removes a folder and everything inside it.
	DeleteFolder(ctx context.Context, folderID string) error

	// RenameFolder gives an existing folder a new display name.
	RenameFolder(ctx context.Context, folderID, newName string) error

	// GetOrCreateSubfolder returns the named child folder, creating it
	// only when it does not exist yet.
	GetOrCreateSubfolder(ctx context.Context, parentID, name string) (string, error)

	// Download fetches a file's content and MIME type. Photos are small,
	// so the whole file is buffered in memory.
	Download(ctx context.Context, fileID string) (File, error)
}

// PublicFileURL membangun URL publik konvensional untuk sebuah file ID.
func PublicFileURL(fileID string) string {
	return "https://drive.google.com/uc?id=" + fileID
}
