package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FACorreiaa/facturation-pro/assets"
)

// SetupAssets serves the embedded stylesheet and scripts under /assets.
func SetupAssets(r *gin.Engine) {
	r.StaticFS("/assets", http.FS(assets.Assets))
}
