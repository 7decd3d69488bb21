package scripting

import (
	"context"

	"github.com/dop251/goja"
)

type GojaEngine struct {
	vm *goja.Runtime
}

func NewEngine() *GojaEngine {
	vm := goja.New()
	return &GojaEngine{vm: vm}
}

func (e *GojaEngine) Execute(ctx context.Context, script string) (interface{}, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan struct{})
	defer close(done)
	defer e.vm.ClearInterrupt()

	go func() {
		select {
		case <-ctx.Done():
			e.vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	val, err := e.vm.RunString(script)
	if err != nil {
		if interruptedErr, ok := err.(*goja.InterruptedError); ok {
			if cause := interruptedErr.Unwrap(); cause != nil {
				return nil, cause
			}
			return nil, context.Canceled
		}
		return nil, err
	}
	return val.Export(), nil
}

func (e *GojaEngine) RegisterDOM(dom EditorDOM) error {
	// Expose 'app' object
	appObj := e.vm.NewObject()
	err := appObj.Set("alert", func(call goja.FunctionCall) goja.Value {
		msg := ""
		if len(call.Arguments) > 0 {
			msg = call.Arguments[0].String()
		}
		dom.Alert(msg)
		return goja.Undefined()
	})
	if err != nil {
		return err
	}
	if err := e.vm.Set("app", appObj); err != nil {
		return err
	}

	// Expose 'editor' object
	ed := e.vm.NewObject()
	methods := map[string]func(goja.FunctionCall) goja.Value{
		"pageCount": func(call goja.FunctionCall) goja.Value {
			return e.vm.ToValue(dom.PageCount())
		},
		"currentPage": func(call goja.FunctionCall) goja.Value {
			return e.vm.ToValue(dom.CurrentPage())
		},
		"indents": func(call goja.FunctionCall) goja.Value {
			left, right, firstLine := dom.Indents()
			obj := e.vm.NewObject()
			obj.Set("left", left)
			obj.Set("right", right)
			obj.Set("firstLine", firstLine)
			return obj
		},
		"setIndents": func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) < 3 {
				return goja.Undefined()
			}
			dom.SetIndents(
				int(call.Arguments[0].ToInteger()),
				int(call.Arguments[1].ToInteger()),
				int(call.Arguments[2].ToInteger()),
			)
			return goja.Undefined()
		},
		"blockCount": func(call goja.FunctionCall) goja.Value {
			return e.vm.ToValue(dom.BlockCount())
		},
		"blockText": func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) < 1 {
				return goja.Null()
			}
			text, err := dom.BlockText(int(call.Arguments[0].ToInteger()))
			if err != nil {
				return goja.Null()
			}
			return e.vm.ToValue(text)
		},
		"insertParagraph": func(call goja.FunctionCall) goja.Value {
			text := ""
			if len(call.Arguments) > 0 {
				text = call.Arguments[0].String()
			}
			dom.InsertParagraph(text)
			return goja.Undefined()
		},
		"undo": func(call goja.FunctionCall) goja.Value {
			return e.vm.ToValue(dom.Undo())
		},
	}
	for name, fn := range methods {
		if err := ed.Set(name, fn); err != nil {
			return err
		}
	}
	return e.vm.Set("editor", ed)
}
