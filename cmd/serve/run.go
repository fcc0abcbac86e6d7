package serve

import (
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/bgraf/gpxview/blob"
	"github.com/bgraf/gpxview/config"
	"github.com/bgraf/gpxview/display"
	"github.com/bgraf/gpxview/mapsurface"
	"github.com/bgraf/gpxview/overlay"
	"github.com/bgraf/gpxview/render"
	"github.com/bgraf/gpxview/res"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func RunServeCmd(cmd *cobra.Command, args []string) error {
	api, err := newServeAPI()
	if err != nil {
		return err
	}
	defer api.controller.Close()

	if config.HasInitialFile() {
		if err := api.loadFile(config.InitialFile()); err != nil {
			return err
		}
	}

	r, err := newEngine(api)
	if err != nil {
		return err
	}

	addr := config.ListenAddress()
	log.Printf("serving on %s", addr)

	return r.Run(addr)
}

func newEngine(api *serveAPI) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.MaxMultipartMemory = api.maxUpload

	templates, err := render.ReadTemplates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(templates)

	static, err := fs.Sub(res.Static, "static")
	if err != nil {
		return nil, fmt.Errorf("static files: %w", err)
	}
	r.StaticFS("/static", http.FS(static))

	r.GET("/", api.ServeIndex)
	r.GET("/api/state", api.ServeState)
	r.GET("/api/track", api.ServeTrack)
	r.POST("/api/track", api.ServeUpload)
	r.DELETE("/api/track", api.ServeClear)
	r.GET("/blob/:GUID", api.ServeBlob)

	return r, nil
}

type serveAPI struct {
	surface    *mapsurface.Surface
	slots      *display.Slots
	blobs      *blob.Store
	controller *overlay.Controller
	maxUpload  int64
}

func newServeAPI() (*serveAPI, error) {
	surface := mapsurface.New(mapsurface.TileLayer{
		URL:         config.TileURL(),
		MaxZoom:     config.MaxZoom(),
		Attribution: config.Attribution(),
	})

	// Without its container the UI cannot work at all.
	if err := surface.Initialize(config.MapContainer()); err != nil {
		return nil, fmt.Errorf("initialize map: %w", err)
	}

	slots := display.New()
	blobs := blob.NewStore("/blob")

	controller := overlay.NewController(
		surface,
		slots,
		blobs,
		nil,
		overlay.Style{Color: config.OverlayColor()},
		config.DisplayLocation(),
	)

	return &serveAPI{
		surface:    surface,
		slots:      slots,
		blobs:      blobs,
		controller: controller,
		maxUpload:  config.MaxUploadBytes(),
	}, nil
}

// loadFile hands a track file from disk to the controller.
func (api *serveAPI) loadFile(trackFilePath string) error {
	data, err := os.ReadFile(trackFilePath)
	if err != nil {
		return fmt.Errorf("read track file: %w", err)
	}

	_, err = api.controller.SetFile(&overlay.InputFile{
		Name: filepath.Base(trackFilePath),
		Data: data,
	})

	return err
}
