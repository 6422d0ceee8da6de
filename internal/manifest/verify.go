package manifest

import (
	"context"
	"fmt"

	"github.com/compose-spec/compose-go/v2/loader"
	composetypes "github.com/compose-spec/compose-go/v2/types"
	"gopkg.in/yaml.v3"
)

// Verify round-trips the generated manifest through the compose-go
// loader before it reaches disk, so a projection bug shows up as an
// error here rather than as a broken deployment.
func Verify(content []byte) error {
	var dict map[string]interface{}
	if err := yaml.Unmarshal(content, &dict); err != nil {
		return fmt.Errorf("manifest is not valid YAML: %w", err)
	}

	_, err := loader.LoadWithContext(context.Background(), composetypes.ConfigDetails{
		ConfigFiles: []composetypes.ConfigFile{
			{
				Content: content,
				Config:  dict,
			},
		},
	}, func(opts *loader.Options) {
		opts.SetProjectName("astro", false)
		opts.SkipValidation = false
		// In-memory content, nothing to resolve or extend.
		opts.SkipNormalization = true
		opts.SkipExtends = true
	})
	if err != nil {
		return fmt.Errorf("manifest failed compose validation: %w", err)
	}

	return nil
}
