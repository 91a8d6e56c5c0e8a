package minic

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config map[string]*cfgVal

// NewConfig creates a new configuration object primed with the
// default values expected by the code generator and its CLI driver.
func NewConfig() *Config {
	m := make(Config)
	m.SetBool("codegen.stop_on_first_error", false)
	m.SetBool("diagnostics.color", true)
	m.SetBool("diagnostics.verbose", false)
	return &m
}

type cfgValType int

const (
	cfgValType_Undefined cfgValType = iota
	cfgValType_Bool
	cfgValType_Int
	cfgValType_String
)

func (vt cfgValType) String() string {
	return map[cfgValType]string{
		cfgValType_Undefined: "undefined",
		cfgValType_Bool:      "bool",
		cfgValType_Int:       "int",
		cfgValType_String:    "string",
	}[vt]
}

type cfgVal struct {
	typ      cfgValType
	asBool   bool
	asInt    int
	asString string
}

// assignType is mostly for preventing programming errors, it
func (v *cfgVal) assignType(vt cfgValType) {
	if v.typ != vt && v.typ != cfgValType_Undefined {
		panic(fmt.Sprintf("Can't assign `%s` to type `%s`", vt, v.typ))
	}
	v.typ = vt
}

func (v *cfgVal) checkType(vt cfgValType) {
	if v.typ != vt {
		panic(fmt.Sprintf("Can't retrieve `%s` from `%s` variable", vt, v.typ))
	}
}

func (c *Config) SetBool(path string, v bool) {
	(*c)[path] = &cfgVal{}
	(*c)[path].assignType(cfgValType_Bool)
	(*c)[path].asBool = v
}

func (c *Config) SetInt(path string, v int) {
	(*c)[path] = &cfgVal{}
	(*c)[path].assignType(cfgValType_Int)
	(*c)[path].asInt = v
}

func (c *Config) SetString(path string, v string) {
	(*c)[path] = &cfgVal{}
	(*c)[path].assignType(cfgValType_String)
	(*c)[path].asString = v
}

func (c *Config) GetBool(path string) bool {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_Bool)
		return val.asBool
	}
	panic(fmt.Sprintf("Bool setting `%s` does not exist", path))
}

func (c *Config) GetInt(path string) int {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_Int)
		return val.asInt
	}
	panic(fmt.Sprintf("Int setting `%s` does not exist", path))
}

func (c *Config) GetString(path string) string {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_String)
		return val.asString
	}
	panic(fmt.Sprintf("String setting `%s` does not exist", path))
}

// LoadYAML merges a flat map of settings read from a YAML file over
// the receiver's current values. Keys absent from the file are left
// untouched. A key present in the file but never registered via
// NewConfig is rejected, since the setter dispatch below has no type
// to check it against.
func (c *Config) LoadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing config %q: %w", path, err)
	}
	for k, v := range raw {
		existing, ok := (*c)[k]
		if !ok {
			return fmt.Errorf("unknown config key %q in %s", k, path)
		}
		switch existing.typ {
		case cfgValType_Bool:
			b, ok := v.(bool)
			if !ok {
				return fmt.Errorf("config key %q expects a bool, got %T", k, v)
			}
			c.SetBool(k, b)
		case cfgValType_Int:
			n, ok := v.(int)
			if !ok {
				return fmt.Errorf("config key %q expects an int, got %T", k, v)
			}
			c.SetInt(k, n)
		case cfgValType_String:
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("config key %q expects a string, got %T", k, v)
			}
			c.SetString(k, s)
		default:
			return fmt.Errorf("config key %q has no registered type", k)
		}
	}
	return nil
}
