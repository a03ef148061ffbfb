package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/camden-git/hrmbackend/media"
)

const assetCacheDuration = 24 * time.Hour

// AssetServer creates a handler serving files of one asset directory from the store.
// The route prefix must be /api/<subDir>/, e.g.
//
//	r.Get("/api/avatars/*", AssetServer(store, "avatars", logger))
func AssetServer(store media.Store, subDir string, logger *zap.Logger) (http.HandlerFunc, error) {
	cleanSubDir := path.Clean("/" + subDir)[1:]
	if cleanSubDir == "" || cleanSubDir != subDir {
		return nil, fmt.Errorf("invalid asset subdirectory '%s'", subDir)
	}
	logger.Info("serving assets", zap.String("route", "/api/"+subDir+"/*"))

	routePrefix := "/api/" + subDir + "/"
	return func(w http.ResponseWriter, r *http.Request) {
		relativePath := strings.TrimPrefix(r.URL.Path, routePrefix)
		if relativePath == "" || strings.Contains(relativePath, "..") {
			WriteAPIError(w, http.StatusBadRequest, CodeBadRequest, "Invalid asset path")
			return
		}

		file, info, err := store.Get(subDir + "/" + relativePath)
		switch {
		case errors.Is(err, media.ErrInvalidPath):
			logger.Warn("asset access outside designated directory", zap.String("request", r.URL.Path))
			WriteAPIError(w, http.StatusForbidden, CodeForbidden, "Forbidden")
			return
		case errors.Is(err, os.ErrNotExist):
			http.NotFound(w, r)
			return
		case err != nil:
			logger.Error("failed to open asset", zap.String("request", r.URL.Path), zap.Error(err))
			WriteAPIError(w, http.StatusInternalServerError, CodeInternal, "Internal Server Error")
			return
		}
		defer file.Close()

		if info.IsDir() {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(assetCacheDuration.Seconds())))
		w.Header().Set("Expires", time.Now().Add(assetCacheDuration).Format(http.TimeFormat))
		if seeker, ok := file.(io.ReadSeeker); ok {
			http.ServeContent(w, r, info.Name(), info.ModTime(), seeker)
			return
		}
		w.WriteHeader(http.StatusOK)
		if _, err := io.Copy(w, file); err != nil {
			logger.Warn("failed to write asset", zap.String("request", r.URL.Path), zap.Error(err))
		}
	}, nil
}
