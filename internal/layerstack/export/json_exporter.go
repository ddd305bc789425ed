package export

import (
	"encoding/json"

	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/domain"
)

func ToJSON(p domain.Project) ([]byte, error) {
	return json.MarshalIndent(p.Clone(), "", "  ")
}
