package config

import "reflect"

// EnvMapping associates an environment variable with its koanf config path.
type EnvMapping struct {
	EnvVar     string
	ConfigPath string
}

// GenerateEnvMappings walks the Config struct tags and returns the
// environment variable to config path mappings declared via `env` tags.
func GenerateEnvMappings() []EnvMapping {
	var mappings []EnvMapping
	collectEnvMappings(reflect.TypeOf(Config{}), "", &mappings)
	return mappings
}

func collectEnvMappings(t reflect.Type, prefix string, out *[]EnvMapping) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		koanfTag := field.Tag.Get("koanf")
		if koanfTag == "" || koanfTag == "-" {
			continue
		}
		path := koanfTag
		if prefix != "" {
			path = prefix + "." + koanfTag
		}
		if envTag := field.Tag.Get("env"); envTag != "" {
			*out = append(*out, EnvMapping{EnvVar: envTag, ConfigPath: path})
		}
		ft := field.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct && ft.PkgPath() == t.PkgPath() {
			collectEnvMappings(ft, path, out)
		}
	}
}
