package handler

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "golang.org/x/image/webp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadCover stores an article cover image and returns its public URL
// along with the probed dimensions.
func (a *API) UploadCover(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Nenhuma imagem enviada")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "Apenas imagens são permitidas")
		return
	}

	opened, err := file.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Não foi possível ler a imagem")
		return
	}
	config, _, err := image.DecodeConfig(opened)
	opened.Close()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Formato de imagem não reconhecido")
		return
	}

	if err := os.MkdirAll(a.uploadDir, 0o755); err != nil {
		respondError(c, http.StatusInternalServerError, "Erro ao preparar o armazenamento")
		return
	}

	ext := filepath.Ext(file.Filename)
	filename := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(a.uploadDir, filename)); err != nil {
		respondError(c, http.StatusInternalServerError, "Erro ao guardar a imagem")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":    fmt.Sprintf("%s/%s", strings.TrimSuffix(a.uploadURL, "/"), filename),
		"width":  config.Width,
		"height": config.Height,
	})
}
