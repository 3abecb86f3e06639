package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"notedock/internal/application/commands"
	"notedock/internal/domain"
)

const (
	opSave        = "save"
	opAddCategory = "add_category"
	opAddNode     = "add_node"
	opAddDocument = "add_document"
	opDelete      = "delete"
	opUpload      = "upload"
	opOpen        = "open"
	opRefresh     = "refresh_landing"
)

type saveRequest struct {
	FilePath string  `json:"filePath" binding:"required"`
	Content  *string `json:"content" binding:"required"`
}

type categoryRequest struct {
	NodeName string `json:"nodeName" binding:"required"`
}

type nodeRequest struct {
	NodeName string   `json:"nodeName" binding:"required"`
	Paths    []string `json:"paths" binding:"required"`
}

type documentRequest struct {
	MDName string   `json:"mdName" binding:"required"`
	Paths  []string `json:"paths" binding:"required"`
}

type deleteRequest struct {
	Paths []string `json:"paths" binding:"required"`
}

type openRequest struct {
	FilePath string `json:"filePath" binding:"required"`
}

func (s *Server) handleSave(c *gin.Context) {
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		missingParams(c, "missing required parameters: filePath and content")
		return
	}

	result, err := commands.NewSaveDocumentCommand(s.repo, req.FilePath, *req.Content).Execute(c.Request.Context())
	if err != nil {
		s.fail(c, opSave, err)
		return
	}

	s.ok(c, opSave, Response{
		Message:   result.Message,
		FilePath:  result.FilePath,
		Timestamp: result.Timestamp,
	})
	s.refreshLanding()
}

// refreshLanding rewrites the landing page in the background. Its failure
// never reaches the client that triggered it.
func (s *Server) refreshLanding() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if _, err := commands.NewRefreshLandingCommand(s.repo).Execute(context.Background()); err != nil {
			s.count(opRefresh, outcomeError)
			s.logger.Warn("landing refresh failed", "error", err)
			return
		}
		s.count(opRefresh, outcomeOK)
	}()
}

func (s *Server) handleAddCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		missingParams(c, "missing required parameters: nodeName")
		return
	}

	result, err := commands.NewAddCategoryCommand(s.repo, req.NodeName).Execute(c.Request.Context())
	if err != nil {
		s.fail(c, opAddCategory, err)
		return
	}
	s.ok(c, opAddCategory, Response{Message: result.Message})
}

func (s *Server) handleAddNode(c *gin.Context) {
	var req nodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		missingParams(c, "missing required parameters: nodeName, paths")
		return
	}

	result, err := commands.NewAddNodeCommand(s.repo, req.NodeName, req.Paths).Execute(c.Request.Context())
	if err != nil {
		s.fail(c, opAddNode, err)
		return
	}
	s.ok(c, opAddNode, Response{Message: result.Message})
}

func (s *Server) handleAddDocument(c *gin.Context) {
	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		missingParams(c, "missing required parameters: mdName, paths")
		return
	}

	result, err := commands.NewAddDocumentCommand(s.repo, req.MDName, req.Paths).Execute(c.Request.Context())
	if err != nil {
		s.fail(c, opAddDocument, err)
		return
	}
	s.ok(c, opAddDocument, Response{Message: result.Message, FilePath: result.Link})
}

func (s *Server) handleDeleteNode(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		missingParams(c, "missing required parameters: paths")
		return
	}

	result, err := commands.NewDeleteCommand(s.repo, req.Paths).Execute(c.Request.Context())
	if err != nil {
		s.fail(c, opDelete, err)
		return
	}
	s.ok(c, opDelete, Response{Message: result.Message})
}

func (s *Server) handleUpload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadSize+1<<20)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Code: CodeFileTooLarge, Message: "file exceeds 10MB limit"})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: CodeNoFile, Message: "no file uploaded"})
		return
	}
	if header.Size > MaxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Code: CodeFileTooLarge, Message: "file exceeds 10MB limit"})
		return
	}

	file, err := header.Open()
	if err != nil {
		s.fail(c, opUpload, err)
		return
	}
	defer file.Close()

	cmd := commands.NewUploadImageCommand(s.repo, c.PostForm("mdPath"), header.Filename, file)
	result, err := cmd.Execute(c.Request.Context())
	if err != nil {
		s.fail(c, opUpload, err)
		return
	}
	s.ok(c, opUpload, Response{Message: result.Message, URL: result.URL})
}

func (s *Server) handleOpen(c *gin.Context) {
	var req openRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		missingParams(c, "missing required parameters: filePath")
		return
	}

	result, err := commands.NewOpenDocumentCommand(s.repo, s.opener, req.FilePath).Execute(c.Request.Context())
	if err != nil {
		s.fail(c, opOpen, err)
		return
	}
	s.ok(c, opOpen, Response{Message: result.Message})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": s.now().UTC().Format(time.RFC3339Nano),
	})
}

func (s *Server) handleRecent(c *gin.Context) {
	result, err := commands.NewRecentCommand(s.repo).Execute(c.Request.Context())
	if err != nil {
		s.fail(c, "recent", err)
		return
	}

	files := make([]RecentFile, 0, len(result.Files))
	for _, f := range result.Files {
		files = append(files, RecentFile{
			Path:     f.Path,
			Title:    f.Title,
			Mtime:    f.Mtime.UnixMilli(),
			MtimeStr: f.Label,
		})
	}
	c.JSON(http.StatusOK, files)
}

func (s *Server) handleSidebar(c *gin.Context) {
	result, err := commands.NewTreeCommand(s.repo).Execute(c.Request.Context())
	if err != nil {
		s.fail(c, "tree", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"nav":     result.Nav.Entries,
		"sidebar": result.Sidebar,
	})
}

func (s *Server) handlePreview(c *gin.Context) {
	filePath := c.Query("filePath")
	if filePath == "" {
		missingParams(c, "missing required parameters: filePath")
		return
	}

	result, err := commands.NewPreviewCommand(s.repo, s.renderer, filePath).Execute(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
			return
		}
		s.fail(c, "preview", err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(result.HTML))
}
