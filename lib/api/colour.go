package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/glintproject/glint/lib/utils"
)

type ColourReq struct {
	Colour string `json:"colour" example:"#ff8033ff"`
}

// @Summary	Read or replace the pulse colour
// @Router		/api/colour [get]
// @Router		/api/colour [put]
// @Tags		shaders
// @Param		colourReq	body	ColourReq	false	"New pulse colour as #rrggbbaa"
// @Accept		json
// @Produce	json
// @Success	200	{object}	ColourReq
// @Failure	400	{string}	string	"Not a valid RGBA hex colour"
func (a *Api) handleColour(w http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodGet:
		a.writeColour(w)
	case http.MethodPut, http.MethodPost:
		var colourReq ColourReq
		err := json.NewDecoder(req.Body).Decode(&colourReq)
		if err != nil {
			http.Error(w, fmt.Sprintf("could not decode json request: %s", err), http.StatusBadRequest)
			return
		}
		if !utils.ColourValidate(colourReq.Colour) {
			http.Error(w, fmt.Sprintf("%s is not a valid RGBA hex colour", colourReq.Colour), http.StatusBadRequest)
			return
		}
		a.scene.SetPulseColour(utils.ColourParse(colourReq.Colour))
		a.writeColour(w)
	default:
		http.Error(w, "invalid method, only GET and PUT supported", http.StatusMethodNotAllowed)
	}
}

func (a *Api) writeColour(w http.ResponseWriter) {
	err := json.NewEncoder(w).Encode(&ColourReq{Colour: a.scene.PulseColour().Hex()})
	if err != nil {
		slog.Error(fmt.Sprintf("could not write response: %s", err), "module", "api")
		return
	}
}
