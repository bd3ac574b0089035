package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/smazurov/fourzone/internal/color"
	"github.com/smazurov/fourzone/internal/effects"
	"github.com/smazurov/fourzone/internal/engine"
)

// mapEngineError translates engine errors into HTTP errors: rejected
// input becomes 400, anything else (transport failures) becomes 500.
func mapEngineError(err error) error {
	if errors.Is(err, engine.ErrInvalidArgument) {
		return huma.Error400BadRequest("Invalid request", err)
	}
	return huma.Error500InternalServerError("Hardware update failed", err)
}

// stateData converts an engine state into the API payload.
func stateData(st engine.State) LightingStateData {
	colors := make([]string, len(st.Colors))
	for i, c := range st.Colors {
		colors[i] = c.Hex()
	}
	return LightingStateData{
		Mode:       st.Mode.String(),
		Speed:      st.Speed,
		Brightness: st.Brightness,
		Active:     st.Active,
		Colors:     colors,
	}
}

// registerLightingRoutes registers the lighting control endpoints.
func (s *Server) registerLightingRoutes() {
	lighting := s.options.Lighting

	// Full state
	huma.Register(s.api, huma.Operation{
		OperationID: "get-lighting-state",
		Method:      http.MethodGet,
		Path:        "/api/lighting",
		Summary:     "Get Lighting State",
		Description: "Get the full lighting state: mode, speed, brightness and per-zone colors",
		Tags:        []string{"lighting"},
		Errors:      []int{401},
		Security:    withAuth(),
	}, func(ctx context.Context, input *struct{}) (*LightingStateResponse, error) {
		return &LightingStateResponse{Body: stateData(lighting.State())}, nil
	})

	// Supported modes
	huma.Register(s.api, huma.Operation{
		OperationID: "list-lighting-modes",
		Method:      http.MethodGet,
		Path:        "/api/lighting/modes",
		Summary:     "List Animation Modes",
		Description: "Get the list of supported animation mode names",
		Tags:        []string{"lighting"},
		Errors:      []int{401},
		Security:    withAuth(),
	}, func(ctx context.Context, input *struct{}) (*ModesResponse, error) {
		resp := &ModesResponse{}
		resp.Body.Modes = effects.Names()
		return resp, nil
	})

	// Per-zone color
	huma.Register(s.api, huma.Operation{
		OperationID: "get-zone-color",
		Method:      http.MethodGet,
		Path:        "/api/lighting/zones/{zone}/color",
		Summary:     "Get Zone Color",
		Description: "Get one zone's base color as a hex RGB string",
		Tags:        []string{"lighting"},
		Errors:      []int{400, 401},
		Security:    withAuth(),
	}, func(ctx context.Context, input *struct {
		Zone int `path:"zone" minimum:"0" maximum:"3" doc:"Zone index"`
	}) (*ColorResponse, error) {
		st := lighting.State()
		return &ColorResponse{Body: ColorData{Color: st.Colors[input.Zone].Hex()}}, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID: "set-zone-color",
		Method:      http.MethodPut,
		Path:        "/api/lighting/zones/{zone}/color",
		Summary:     "Set Zone Color",
		Description: "Set one zone's base color. Stops any running animation and switches to static mode.",
		Tags:        []string{"lighting"},
		Errors:      []int{400, 401, 500},
		Security:    withAuth(),
	}, func(ctx context.Context, input *struct {
		Zone int `path:"zone" minimum:"0" maximum:"3" doc:"Zone index"`
		Body ColorData
	}) (*struct{}, error) {
		c, err := color.ParseHex(input.Body.Color)
		if err != nil {
			return nil, huma.Error400BadRequest("Invalid color", err)
		}
		if err := lighting.SetZoneColor(input.Zone, c); err != nil {
			return nil, mapEngineError(err)
		}
		return &struct{}{}, nil
	})

	// All-zone color
	huma.Register(s.api, huma.Operation{
		OperationID: "get-all-color",
		Method:      http.MethodGet,
		Path:        "/api/lighting/color",
		Summary:     "Get Color",
		Description: "Get zone 0's base color, which is the whole-keyboard color after a set-all",
		Tags:        []string{"lighting"},
		Errors:      []int{401},
		Security:    withAuth(),
	}, func(ctx context.Context, input *struct{}) (*ColorResponse, error) {
		st := lighting.State()
		return &ColorResponse{Body: ColorData{Color: st.Colors[0].Hex()}}, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID: "set-all-color",
		Method:      http.MethodPut,
		Path:        "/api/lighting/color",
		Summary:     "Set Color",
		Description: "Set every zone's base color in one batch. Stops any running animation and switches to static mode.",
		Tags:        []string{"lighting"},
		Errors:      []int{400, 401, 500},
		Security:    withAuth(),
	}, func(ctx context.Context, input *struct {
		Body ColorData
	}) (*struct{}, error) {
		c, err := color.ParseHex(input.Body.Color)
		if err != nil {
			return nil, huma.Error400BadRequest("Invalid color", err)
		}
		if err := lighting.SetAllColor(c); err != nil {
			return nil, mapEngineError(err)
		}
		return &struct{}{}, nil
	})

	// Brightness
	huma.Register(s.api, huma.Operation{
		OperationID: "get-brightness",
		Method:      http.MethodGet,
		Path:        "/api/lighting/brightness",
		Summary:     "Get Brightness",
		Description: "Get the global brightness percentage",
		Tags:        []string{"lighting"},
		Errors:      []int{401},
		Security:    withAuth(),
	}, func(ctx context.Context, input *struct{}) (*BrightnessResponse, error) {
		return &BrightnessResponse{Body: BrightnessData{Brightness: lighting.State().Brightness}}, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID: "set-brightness",
		Method:      http.MethodPut,
		Path:        "/api/lighting/brightness",
		Summary:     "Set Brightness",
		Description: "Set the global brightness percentage and rescale all zones",
		Tags:        []string{"lighting"},
		Errors:      []int{400, 401, 500},
		Security:    withAuth(),
	}, func(ctx context.Context, input *struct {
		Body BrightnessData
	}) (*struct{}, error) {
		if err := lighting.SetBrightness(input.Body.Brightness); err != nil {
			return nil, mapEngineError(err)
		}
		return &struct{}{}, nil
	})

	// Animation mode
	huma.Register(s.api, huma.Operation{
		OperationID: "get-mode",
		Method:      http.MethodGet,
		Path:        "/api/lighting/mode",
		Summary:     "Get Animation Mode",
		Description: "Get the active animation mode name",
		Tags:        []string{"lighting"},
		Errors:      []int{401},
		Security:    withAuth(),
	}, func(ctx context.Context, input *struct{}) (*ModeResponse, error) {
		return &ModeResponse{Body: ModeData{Mode: lighting.State().Mode.String()}}, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID: "set-mode",
		Method:      http.MethodPut,
		Path:        "/api/lighting/mode",
		Summary:     "Set Animation Mode",
		Description: "Switch the animation mode by name. Non-static modes start the animation loop.",
		Tags:        []string{"lighting"},
		Errors:      []int{400, 401, 500},
		Security:    withAuth(),
	}, func(ctx context.Context, input *struct {
		Body ModeData
	}) (*struct{}, error) {
		if err := lighting.SetModeName(input.Body.Mode); err != nil {
			return nil, mapEngineError(err)
		}
		return &struct{}{}, nil
	})

	// Animation speed
	huma.Register(s.api, huma.Operation{
		OperationID: "get-speed",
		Method:      http.MethodGet,
		Path:        "/api/lighting/speed",
		Summary:     "Get Animation Speed",
		Description: "Get the animation speed (1-10)",
		Tags:        []string{"lighting"},
		Errors:      []int{401},
		Security:    withAuth(),
	}, func(ctx context.Context, input *struct{}) (*SpeedResponse, error) {
		return &SpeedResponse{Body: SpeedData{Speed: lighting.State().Speed}}, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID: "set-speed",
		Method:      http.MethodPut,
		Path:        "/api/lighting/speed",
		Summary:     "Set Animation Speed",
		Description: "Set the animation speed. A running animation restarts with the new cycle length.",
		Tags:        []string{"lighting"},
		Errors:      []int{400, 401, 500},
		Security:    withAuth(),
	}, func(ctx context.Context, input *struct {
		Body SpeedData
	}) (*struct{}, error) {
		if err := lighting.SetSpeed(input.Body.Speed); err != nil {
			return nil, mapEngineError(err)
		}
		return &struct{}{}, nil
	})

	s.logger.Info("Lighting routes registered")
}
