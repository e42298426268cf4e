package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Armando-Castillo/loteria/internal/loteria"
	"github.com/Armando-Castillo/loteria/internal/pool"
)

// The web form's default caption size. The CLI defaults to 32; the two
// call sites have always disagreed, so each glue layer owns its default
// and the engine takes whatever it is handed.
const defaultLabelFontSize = 40

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// generateHandler accepts a multipart upload of images plus generation
// fields and responds with the finished PDF as an attachment.
func generateHandler(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no images uploaded"})
		return
	}

	params := loteria.Params{
		CardCount:     formInt(c, "count", 10),
		Title:         formString(c, "title", "Lotería Mexicana"),
		LabelFontSize: float64(formInt(c, "font_size", defaultLabelFontSize)),
		IncludeDeck:   formBool(c, "deck"),
		ShareURL:      c.PostForm("share_url"),
		Seed:          int64(formInt(c, "seed", 0)),
	}

	sources := make([]pool.Source, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			slog.Warn("skipping unreadable upload", "name", fh.Filename, "error", err)
			continue
		}
		defer f.Close()
		sources = append(sources, pool.Source{Name: fh.Filename, Reader: f})
	}

	p, err := pool.Load(sources, slog.Default())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pdf, err := loteria.Generate(c.Request.Context(), p, params)
	if err != nil {
		var cfgErr *loteria.ConfigError
		var insErr *loteria.InsufficientImagesError
		switch {
		case errors.As(err, &cfgErr), errors.As(err, &insErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			slog.Error("generation failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="loteria_completa.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func formInt(c *gin.Context, key string, fallback int) int {
	if s := c.PostForm(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
	}
	return fallback
}

func formString(c *gin.Context, key, fallback string) string {
	if s := c.PostForm(key); s != "" {
		return s
	}
	return fallback
}

func formBool(c *gin.Context, key string) bool {
	switch c.PostForm(key) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}
