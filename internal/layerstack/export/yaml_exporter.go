package export

import (
	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/domain"
	"gopkg.in/yaml.v3"
)

func ToYAML(p domain.Project) ([]byte, error) {
	return yaml.Marshal(p.Clone())
}
