package config

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/arnodel/golua/lib"
	rt "github.com/arnodel/golua/runtime"
)

// Resource limits applied while executing a Lua theme file.
const (
	luaCPULimit    = 10_000_000
	luaMemoryLimit = 50 * 1024 * 1024 // 50 MB
)

// LuaThemeParser parses Lua theme files. The file assigns a table to
// glasspane.config:
//
//	glasspane.config = {
//	    variant = 'toolbar',
//	    corner_radius = 8,
//	    toolbar = { 'minimize', 'pin' },
//	}
type LuaThemeParser struct {
	runtime *rt.Runtime
	cleanup func()
	mu      sync.Mutex
}

// NewLuaThemeParser creates a LuaThemeParser with a fresh Lua runtime whose
// print output is discarded.
func NewLuaThemeParser() *LuaThemeParser {
	return NewLuaThemeParserWithOutput(io.Discard)
}

// NewLuaThemeParserWithOutput creates a LuaThemeParser that sends Lua print
// output to stdout. A nil writer means os.Stdout.
func NewLuaThemeParserWithOutput(stdout io.Writer) *LuaThemeParser {
	if stdout == nil {
		stdout = os.Stdout
	}
	runtime := rt.New(stdout)
	cleanup := lib.LoadAll(runtime)
	return &LuaThemeParser{runtime: runtime, cleanup: cleanup}
}

// Parse executes the Lua source and builds a Config from glasspane.config.
func (p *LuaThemeParser) Parse(content []byte) (*Config, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.initGlobal()

	closure, err := p.runtime.CompileAndLoadLuaChunk(
		"theme",
		content,
		rt.TableValue(p.runtime.GlobalEnv()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile Lua theme: %w", err)
	}

	p.runtime.PushContext(rt.RuntimeContextDef{
		HardLimits: rt.RuntimeResources{
			Cpu:    luaCPULimit,
			Memory: luaMemoryLimit,
		},
	})
	defer p.runtime.PopContext()

	if _, err := rt.Call1(p.runtime.MainThread(), rt.FunctionValue(closure)); err != nil {
		return nil, fmt.Errorf("failed to execute Lua theme: %w", err)
	}

	tf, err := p.extract()
	if err != nil {
		return nil, err
	}
	return tf.build()
}

// initGlobal installs an empty glasspane.config table.
func (p *LuaThemeParser) initGlobal() {
	root := rt.NewTable()
	root.Set(rt.StringValue("config"), rt.TableValue(rt.NewTable()))
	p.runtime.GlobalEnv().Set(rt.StringValue("glasspane"), rt.TableValue(root))
}

func (p *LuaThemeParser) extract() (*themeFile, error) {
	rootVal := p.runtime.GlobalEnv().Get(rt.StringValue("glasspane"))
	root, ok := rootVal.TryTable()
	if !ok {
		return nil, fmt.Errorf("glasspane is not a table")
	}
	table, ok := root.Get(rt.StringValue("config")).TryTable()
	if !ok {
		return nil, fmt.Errorf("glasspane.config is not a table")
	}

	tf := &themeFile{}
	fields := luaFields(tf)
	for k, v, ok := table.Next(rt.NilValue); ok && !k.IsNil(); k, v, ok = table.Next(k) {
		name, isString := k.TryString()
		if !isString {
			return nil, fmt.Errorf("unexpected %s key in glasspane.config", k.TypeName())
		}
		set, known := fields[name]
		if !known {
			return nil, fmt.Errorf("unknown key %q in glasspane.config", name)
		}
		if err := set(v); err != nil {
			return nil, fmt.Errorf("glasspane.config.%s: %w", name, err)
		}
	}
	return tf, nil
}

// luaField stores one glasspane.config value into a themeFile.
type luaField func(rt.Value) error

// luaFields binds every theme key to the themeFile field it fills. The keys
// match the yaml tags on themeFile.
func luaFields(tf *themeFile) map[string]luaField {
	return map[string]luaField{
		"variant": stringField(&tf.Variant),

		"title":      stringField(&tf.Title),
		"width":      intField(&tf.Width),
		"height":     intField(&tf.Height),
		"x":          intField(&tf.X),
		"y":          intField(&tf.Y),
		"min_width":  intField(&tf.MinWidth),
		"min_height": intField(&tf.MinHeight),

		"background":    stringField(&tf.Background),
		"border_color":  stringField(&tf.Border),
		"border_width":  floatField(&tf.BorderWidth),
		"corner_radius": floatField(&tf.CornerRadius),
		"button_radius": floatField(&tf.ButtonRadius),
		"button_color":  stringField(&tf.Button),
		"button_hover":  stringField(&tf.ButtonHover),
		"close_hover":   stringField(&tf.CloseHover),
		"foreground":    stringField(&tf.Foreground),
		"grip_color":    stringField(&tf.Grip),
		"font_size":     floatField(&tf.FontSize),
		"show_title":    boolField(&tf.ShowTitle),
		"opacity":       floatField(&tf.Opacity),

		"drag_region":    stringField(&tf.DragRegion),
		"title_height":   intField(&tf.TitleHeight),
		"grip_size":      intField(&tf.GripSize),
		"button_size":    intField(&tf.ButtonSize),
		"button_spacing": intField(&tf.ButtonSpacing),
		"button_margin":  intField(&tf.ButtonMargin),
		"toolbar":        toolbarField(&tf.Toolbar),
	}
}

// Close releases resources associated with the parser's Lua runtime.
func (p *LuaThemeParser) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cleanup != nil {
		p.cleanup()
		p.cleanup = nil
	}
	return nil
}

func stringField(dst **string) luaField {
	return func(v rt.Value) error {
		s, ok := v.TryString()
		if !ok {
			return fmt.Errorf("expected string, got %s", v.TypeName())
		}
		*dst = &s
		return nil
	}
}

func boolField(dst **bool) luaField {
	return func(v rt.Value) error {
		b, ok := v.TryBool()
		if !ok {
			return fmt.Errorf("expected boolean, got %s", v.TypeName())
		}
		*dst = &b
		return nil
	}
}

// floatField accepts any Lua number.
func floatField(dst **float64) luaField {
	return func(v rt.Value) error {
		if f, ok := v.TryFloat(); ok {
			*dst = &f
			return nil
		}
		if n, ok := v.TryInt(); ok {
			f := float64(n)
			*dst = &f
			return nil
		}
		return fmt.Errorf("expected number, got %s", v.TypeName())
	}
}

// intField accepts integers and floats with no fractional part.
func intField(dst **int) luaField {
	return func(v rt.Value) error {
		if n, ok := v.TryInt(); ok {
			i := int(n)
			*dst = &i
			return nil
		}
		if f, ok := v.TryFloat(); ok {
			n, tp := rt.FloatToInt(f)
			if tp != rt.IsInt {
				return fmt.Errorf("expected integer, got %g", f)
			}
			i := int(n)
			*dst = &i
			return nil
		}
		return fmt.Errorf("expected integer, got %s", v.TypeName())
	}
}

// toolbarField accepts a sequence of action names or one comma-separated
// string.
func toolbarField(dst *actionList) luaField {
	return func(v rt.Value) error {
		if s, ok := v.TryString(); ok {
			return dst.setString(s)
		}
		seq, ok := v.TryTable()
		if !ok {
			return fmt.Errorf("expected table or string, got %s", v.TypeName())
		}
		n := seq.Len()
		names := make([]string, 0, n)
		for i := int64(1); i <= n; i++ {
			s, ok := seq.Get(rt.IntValue(i)).TryString()
			if !ok {
				return fmt.Errorf("entry %d is not a string", i)
			}
			names = append(names, s)
		}
		return dst.setNames(names)
	}
}
