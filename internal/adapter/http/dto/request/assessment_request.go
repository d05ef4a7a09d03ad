package request

import (
	"encoding/base64"
	"errors"
	"strings"

	"damage_report/internal/domain/entities"
)

var ErrInvalidImageEncoding = errors.New("invalid image encoding")

type VehicleInfoRequest struct {
	Year  int    `json:"year" form:"year"`
	Make  string `json:"make" form:"make"`
	Model string `json:"model" form:"model"`
}

func (v VehicleInfoRequest) ToEntity() entities.VehicleInfo {
	return entities.VehicleInfo{
		Year:  v.Year,
		Make:  strings.TrimSpace(v.Make),
		Model: strings.TrimSpace(v.Model),
	}
}

// ImageRequest is one base64 image of the JSON upload. Data may also be a
// data URI ("data:image/jpeg;base64,..."). MediaType, or the data URI type,
// is a declared type used only when the bytes are not recognised.
type ImageRequest struct {
	Data      string `json:"data"`
	MediaType string `json:"mediaType"`
}

// AssessRequest is the JSON alternative to the multipart upload.
type AssessRequest struct {
	Images      []ImageRequest     `json:"images"`
	VehicleInfo VehicleInfoRequest `json:"vehicleInfo"`
}

// DecodeImages returns every image in order, with its declared media type.
func (r AssessRequest) DecodeImages() ([]entities.AssessmentImage, error) {
	out := make([]entities.AssessmentImage, 0, len(r.Images))
	for _, img := range r.Images {
		data := strings.TrimSpace(img.Data)
		declared := strings.TrimSpace(img.MediaType)
		if i := strings.Index(data, ";base64,"); strings.HasPrefix(data, "data:") && i > 0 {
			if declared == "" {
				declared = data[len("data:"):i]
			}
			data = data[i+len(";base64,"):]
		}
		b, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return nil, ErrInvalidImageEncoding
		}
		out = append(out, entities.AssessmentImage{Data: b, MediaType: declared})
	}
	return out, nil
}
