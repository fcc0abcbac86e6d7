package serve

import (
	"errors"
	"io"
	"net/http"

	"github.com/bgraf/gpxview/blob"
	"github.com/bgraf/gpxview/display"
	"github.com/bgraf/gpxview/geotrack"
	"github.com/bgraf/gpxview/mapsurface"
	"github.com/bgraf/gpxview/overlay"
	"github.com/bgraf/gpxview/render"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type overlayState struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Color  string `json:"color"`
	Loaded bool   `json:"loaded"`
}

type stateResponse struct {
	display.Snapshot
	Generation uint64               `json:"generation"`
	Overlay    *overlayState        `json:"overlay,omitempty"`
	Viewport   *geotrack.Bounds     `json:"viewport,omitempty"`
	Tiles      mapsurface.TileLayer `json:"tiles"`
}

func (api *serveAPI) state() stateResponse {
	st := api.controller.State()

	resp := stateResponse{
		Snapshot: st.Slots,
		Viewport: st.Viewport,
		Tiles:    api.surface.Tiles(),
	}

	if ov := st.Overlay; ov != nil {
		resp.Generation = ov.Generation
		resp.Overlay = &overlayState{
			Name:   ov.Ref.Name,
			URL:    ov.Ref.URL,
			Color:  ov.Style.Color,
			Loaded: st.Loaded,
		}
	}

	return resp
}

func (api *serveAPI) ServeIndex(c *gin.Context) {
	mapHTML, err := render.MapHTML(api.surface.ContainerID(), api.surface.Tiles())
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "error")
		return
	}

	c.HTML(
		http.StatusOK,
		"index.html",
		render.NewIndexPayload(api.slots.Snapshot(), mapHTML),
	)
}

func (api *serveAPI) ServeState(c *gin.Context) {
	c.JSON(http.StatusOK, api.state())
}

func (api *serveAPI) ServeTrack(c *gin.Context) {
	points, ok := api.controller.Track()
	if !ok {
		c.String(http.StatusNotFound, "not found")
		return
	}

	c.JSON(http.StatusOK, points)
}

func (api *serveAPI) ServeUpload(c *gin.Context) {
	if c.Request.ContentLength > api.maxUpload {
		c.String(http.StatusRequestEntityTooLarge, "file too large")
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, api.maxUpload)

	header, err := c.FormFile("file")
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.String(http.StatusRequestEntityTooLarge, "file too large")
		return
	} else if err != nil {
		c.String(http.StatusBadRequest, "missing file")
		return
	}

	f, err := header.Open()
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "error during upload")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "error during upload")
		return
	}

	ov, err := api.controller.SetFile(&overlay.InputFile{Name: header.Filename, Data: data})
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "error")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"generation": ov.Generation,
		"url":        ov.Ref.URL,
	})
}

func (api *serveAPI) ServeClear(c *gin.Context) {
	if _, err := api.controller.SetFile(nil); err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "error")
		return
	}

	c.Status(http.StatusNoContent)
}

func (api *serveAPI) ServeBlob(c *gin.Context) {
	guid, err := uuid.Parse(c.Param("GUID"))
	if err != nil {
		c.String(http.StatusNotFound, "not found")
		return
	}

	b, err := api.blobs.Open(guid)
	if errors.Is(err, blob.ErrNotFound) {
		c.String(http.StatusNotFound, "not found")
		return
	} else if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "error")
		return
	}

	c.Data(http.StatusOK, "application/octet-stream", b.Data)
}
