package api

import "github.com/smazurov/fourzone/internal/version"

// HealthData is the health check payload.
type HealthData struct {
	Status  string `json:"status" example:"ok" doc:"Health status"`
	Message string `json:"message" example:"API is healthy" doc:"Status detail"`
}

// HealthResponse wraps HealthData for Huma.
type HealthResponse struct {
	Body HealthData
}

// VersionResponse wraps version info for Huma.
type VersionResponse struct {
	Body version.Info
}

// LightingStateData is the full lighting state payload.
type LightingStateData struct {
	Mode       string   `json:"mode" example:"rainbow" doc:"Active animation mode"`
	Speed      int      `json:"speed" example:"5" doc:"Animation speed (1-10)"`
	Brightness int      `json:"brightness" example:"100" doc:"Global brightness percentage (0-100)"`
	Active     bool     `json:"active" doc:"Whether an animation is currently running"`
	Colors     []string `json:"colors" example:"[\"ff0000\",\"00ff00\",\"0000ff\",\"ffff00\"]" doc:"Per-zone base colors as hex RGB"`
}

// LightingStateResponse wraps LightingStateData for Huma.
type LightingStateResponse struct {
	Body LightingStateData
}

// ColorData is a single color payload.
type ColorData struct {
	Color string `json:"color" example:"ff8800" doc:"Hex RGB color"`
}

// ColorResponse wraps ColorData for Huma.
type ColorResponse struct {
	Body ColorData
}

// BrightnessData is the brightness payload.
type BrightnessData struct {
	Brightness int `json:"brightness" example:"75" minimum:"0" maximum:"100" doc:"Brightness percentage"`
}

// BrightnessResponse wraps BrightnessData for Huma.
type BrightnessResponse struct {
	Body BrightnessData
}

// ModeData is the animation mode payload.
type ModeData struct {
	Mode string `json:"mode" example:"breathing" doc:"Animation mode name"`
}

// ModeResponse wraps ModeData for Huma.
type ModeResponse struct {
	Body ModeData
}

// SpeedData is the animation speed payload.
type SpeedData struct {
	Speed int `json:"speed" example:"5" minimum:"1" maximum:"10" doc:"Animation speed"`
}

// SpeedResponse wraps SpeedData for Huma.
type SpeedResponse struct {
	Body SpeedData
}

// ModesResponse lists the supported animation modes.
type ModesResponse struct {
	Body struct {
		Modes []string `json:"modes" doc:"Supported animation mode names"`
	}
}
