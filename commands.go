package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/tuannh982/setlike/config"
	"github.com/tuannh982/setlike/set"
	"github.com/tuannh982/setlike/set/commons"
	"github.com/tuannh982/setlike/set/expr"
	"github.com/tuannh982/setlike/set/loader"
	"gopkg.in/yaml.v3"
)

type CLI struct {
	Globals

	Op    OpCmd    `cmd:"" help:"Apply one composite operation to a receiver and an argument."`
	Eval  EvalCmd  `cmd:"" help:"Evaluate a postfix set expression over named operands."`
	Check CheckCmd `cmd:"" help:"Apply every composite operation to a receiver and an argument."`
}

type Globals struct {
	Config   string `help:"TOML config file." env:"SETLIKE_CONFIG" type:"path"`
	LogLevel string `help:"Log level, overrides the config file." env:"SETLIKE_LOG_LEVEL"`
	Output   string `help:"Result format (yaml or text), overrides the config file." short:"o"`
}

type runtime struct {
	cfg *config.Config
	out io.Writer
	log *log.Entry
}

func (g *Globals) runtime(out, logOut io.Writer) (*runtime, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.Output != "" {
		cfg.Output = g.Output
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger(logOut)
	set.SetLogger(newEntry(logger, "set"))
	return &runtime{cfg: cfg, out: out, log: newEntry(logger, "cli")}, nil
}

func (rt *runtime) print(v any) error {
	if rt.cfg.Output == config.OutputText {
		_, err := fmt.Fprintln(rt.out, text(v))
		return err
	}
	data, err := loader.Marshal(v)
	if err != nil {
		return err
	}
	_, err = rt.out.Write(data)
	return err
}

func text(v any) string {
	if s, ok := v.(*set.Set); ok {
		return s.String()
	}
	return commons.Describe(v)
}

func loadReceiver(path string) (*set.Set, error) {
	v, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	s, ok := v.(*set.Set)
	if !ok {
		return nil, fmt.Errorf("%s: receiver must be a YAML sequence", path)
	}
	return s, nil
}

type OpCmd struct {
	Operation string `arg:"" help:"Operation name, e.g. union or isSupersetOf."`
	Receiver  string `arg:"" type:"existingfile" help:"YAML sequence holding the receiver."`
	Other     string `arg:"" type:"existingfile" help:"YAML operand passed as the argument."`
}

func (c *OpCmd) Run(rt *runtime) error {
	op, err := commons.ParseOp(c.Operation)
	if err != nil {
		return err
	}
	receiver, err := loadReceiver(c.Receiver)
	if err != nil {
		return err
	}
	other, err := loader.Load(c.Other)
	if err != nil {
		return err
	}
	res, err := receiver.Apply(op, other)
	if err != nil {
		return err
	}
	rt.log.WithFields(log.Fields{"op": op.String()}).Debug("operation applied")
	return rt.print(res)
}

type EvalCmd struct {
	Operands   map[string]string `short:"s" name:"set" help:"Bind a name to a YAML operand file (name=path)."`
	Expression []string          `arg:"" help:"Postfix expression tokens."`
}

var errBadBinding = errors.New("operand binding needs a name")

func (c *EvalCmd) Run(rt *runtime) error {
	env := make(expr.Env, len(c.Operands))
	for name, path := range c.Operands {
		if name == "" {
			return errBadBinding
		}
		v, err := loader.Load(path)
		if err != nil {
			return err
		}
		env[name] = v
	}
	res, steps, err := expr.Trace(strings.Join(c.Expression, " "), env)
	for _, s := range steps {
		rt.log.WithFields(log.Fields{"op": s.Token, "result": text(s.Result)}).Debug("step evaluated")
	}
	if err != nil {
		return err
	}
	return rt.print(res)
}

type CheckCmd struct {
	Receiver string `arg:"" type:"existingfile" help:"YAML sequence holding the receiver."`
	Other    string `arg:"" type:"existingfile" help:"YAML operand passed as the argument."`
}

type checkResult struct {
	Op     string `yaml:"op"`
	Result any    `yaml:"result,omitempty"`
	Error  string `yaml:"error,omitempty"`
}

func (c *CheckCmd) Run(rt *runtime) error {
	receiver, err := loadReceiver(c.Receiver)
	if err != nil {
		return err
	}
	results := make([]checkResult, 0, len(commons.Ops))
	for _, op := range commons.Ops {
		// every operation gets a fresh argument so descriptor state is not shared
		other, err := loader.Load(c.Other)
		if err != nil {
			return err
		}
		r := checkResult{Op: op.String()}
		res, err := receiver.Apply(op, other)
		switch {
		case err != nil:
			r.Error = err.Error()
		case op.IsPredicate():
			r.Result = res
		default:
			r.Result = res.(*set.Set).Values()
		}
		results = append(results, r)
	}
	if rt.cfg.Output == config.OutputText {
		for _, r := range results {
			line := r.Error
			if line == "" {
				line = text(r.Result)
				if values, ok := r.Result.([]any); ok {
					line = text(set.New(values...))
				}
			}
			if _, err := fmt.Fprintf(rt.out, "%s: %s\n", r.Op, line); err != nil {
				return err
			}
		}
		return nil
	}
	data, err := yaml.Marshal(results)
	if err != nil {
		return err
	}
	_, err = rt.out.Write(data)
	return err
}
