package models

// CreatePageRequest is the body of POST /pages
type CreatePageRequest struct {
	Title           string `json:"title" validate:"required"`
	BackgroundColor string `json:"background_color"`
	Theme           Theme  `json:"theme" validate:"omitempty,oneof=dark light"`
}

// UpdatePageRequest is the body of PUT /pages/:id. Only present fields change.
type UpdatePageRequest struct {
	Title           *string        `json:"title"`
	BackgroundImage *string        `json:"background_image"`
	BackgroundColor *string        `json:"background_color"`
	Theme           *Theme         `json:"theme" validate:"omitempty,oneof=dark light"`
	Components      *[]Component   `json:"components"`
	Settings        map[string]any `json:"settings"`
}

// ExportRequest is the optional body of POST /pages/:id/export
type ExportRequest struct {
	Format string `json:"format"`
}

// EmbedCodeRequest is the optional body of POST /pages/:id/embed-code
type EmbedCodeRequest struct {
	Format string `json:"format"`
}

// EmbedCodeResponse carries the snippet for third-party sites
type EmbedCodeResponse struct {
	EmbedCode string `json:"embed_code"`
	Format    string `json:"format"`
}

// FTPUploadRequest carries per-call FTP credentials. They are never stored.
type FTPUploadRequest struct {
	FTPHost     string `json:"ftp_host" validate:"required"`
	FTPUsername string `json:"ftp_username" validate:"required"`
	FTPPassword string `json:"ftp_password"`
	RemotePath  string `json:"remote_path"`
}

// FTPUploadResponse reports where the page landed
type FTPUploadResponse struct {
	Message    string `json:"message"`
	RemotePath string `json:"remote_path"`
}

// EmailRequest is the body of POST /pages/:id/email
type EmailRequest struct {
	ToEmail string `json:"to_email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Format  string `json:"format" validate:"omitempty,oneof=html link"`
}

// EmailResponse acknowledges a share
type EmailResponse struct {
	Message   string `json:"message"`
	ToEmail   string `json:"to_email"`
	Provider  string `json:"provider"`
	Simulated bool   `json:"simulated"`
}

// MessageResponse is the generic confirmation body
type MessageResponse struct {
	Message string `json:"message"`
}
