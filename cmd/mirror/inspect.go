/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package main

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/voedger/mirror/pkg/goutils/logger"
	"github.com/voedger/mirror/pkg/mirror"
	"github.com/voedger/mirror/pkg/mirror/filter"
	"github.com/voedger/mirror/pkg/mirror/host"
)

type inspectParams struct {
	Class       string
	Kinds       []string
	Name        string
	Type        string
	Annotations []string
	NoAnn       bool
	Elevate     bool
	Require     bool
	NoColor     bool
}

const (
	kindConstructors = "constructors"
	kindFields       = "fields"
	kindParameters   = "parameters"
)

func newInspectCmd(params *mirrorParams) *cobra.Command {
	ip := &inspectParams{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "list catalog declarations matched by filter",
		Long: `List constructors, fields and parameters of the sample catalog matched by filter.

Name criterion is applied to fields and parameters.
Type criterion is a parameter type for constructors and a declared type for fields and parameters.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(params.ConfigFile, cmd.Flags())
			if err != nil {
				return err
			}
			ip.NoColor = ip.NoColor || cfg.NoColor
			p, err := cfg.HostPolicy()
			if err != nil {
				return err
			}
			return inspect(cmd, ip, p)
		},
	}
	cmd.Flags().StringVar(&ip.Class, "class", "", "class to inspect, all classes if empty")
	cmd.Flags().StringSliceVar(&ip.Kinds, "kind", []string{kindConstructors, kindFields, kindParameters}, "declaration kinds to list")
	cmd.Flags().StringVar(&ip.Name, "name", "", "required field or parameter name")
	cmd.Flags().StringVar(&ip.Type, "type", "", "required type name, e.g. int, Logger, *Config")
	cmd.Flags().StringSliceVar(&ip.Annotations, "annotation", nil, "required annotation type names: Inject, Deprecated, StructTag")
	cmd.Flags().BoolVar(&ip.NoAnn, "no-annotations", false, "list declarations without annotations only")
	cmd.Flags().BoolVar(&ip.Elevate, "elevate", false, "try to make matched declarations accessible")
	cmd.Flags().BoolVar(&ip.Require, "require", false, "fail if some matched declaration is not accessible after elevation")
	cmd.Flags().BoolVar(&ip.NoColor, "no-color", false, "disable colored output")
	return cmd
}

// Filters built from inspect params.
type inspectFilters struct {
	ctors  mirror.IConstructorFilter
	fields mirror.IFieldFilter
	params mirror.IParameterFilter
}

func (ip *inspectParams) filters() (*inspectFilters, error) {
	ff := &inspectFilters{
		ctors:  filter.ForConstructors(),
		fields: filter.ForFields(),
		params: filter.ForParameters(),
	}

	if ip.Name != "" {
		ff.fields.WithName(ip.Name)
		ff.params.WithName(ip.Name)
	}

	if ip.Type != "" {
		t, err := lookupType(catalogTypes, ip.Type, "type")
		if err != nil {
			return nil, err
		}
		ff.ctors.WithParameter(t)
		ff.fields.OfType(t)
		ff.params.OfType(t)
	}

	switch {
	case ip.NoAnn && len(ip.Annotations) > 0:
		return nil, mirror.ErrInvalid("--annotation and --no-annotations are mutually exclusive")
	case ip.NoAnn:
		ff.ctors.WithNoAnnotations()
		ff.fields.WithNoAnnotations()
		ff.params.WithNoAnnotations()
	case len(ip.Annotations) > 0:
		tt := make([]reflect.Type, 0, len(ip.Annotations))
		for _, a := range ip.Annotations {
			t, err := lookupType(catalogAnnotations, a, "annotation")
			if err != nil {
				return nil, err
			}
			tt = append(tt, t)
		}
		ff.ctors.WithAnnotations(tt)
		ff.fields.WithAnnotations(tt)
		ff.params.WithAnnotations(tt)
	}

	for _, k := range ip.Kinds {
		if !slices.Contains([]string{kindConstructors, kindFields, kindParameters}, k) {
			return nil, mirror.ErrInvalid("unknown declaration kind «%s»", k)
		}
	}

	return ff, nil
}

func inspect(cmd *cobra.Command, ip *inspectParams, p host.Policy) error {
	ff, err := ip.filters()
	if err != nil {
		return err
	}

	cc, err := catalog(host.New(p)).Build()
	if err != nil {
		return err
	}

	var classes []mirror.IClass
	if ip.Class != "" {
		t, err := lookupType(catalogTypes, ip.Class, "class")
		if err != nil {
			return err
		}
		c := cc.Class(t)
		if c == nil {
			return mirror.ErrClassNotFound(t)
		}
		classes = append(classes, c)
	} else {
		for c := range cc.Classes() {
			classes = append(classes, c)
		}
	}

	headers := []string{"CLASS", "DECLARATION", "TYPE", "VISIBILITY", "ACCESSIBLE"}
	if ip.Elevate || ip.Require {
		headers = append(headers, "ELEVATED")
	}
	tbl := newTable(cmd.OutOrStdout(), ip.NoColor, headers...)

	errs := []error{}
	cnt := 0
	add := func(c mirror.IClass, d mirror.IDeclaration, typ string, elevate func() error) {
		cnt++
		row := []cell{
			plain(c.Type().Name()),
			plain(d.String()),
			plain(typ),
			plain(d.Visibility().TrimString()),
			tbl.yesNo(d.IsAccessible(nil)),
		}
		if ip.Elevate || ip.Require {
			if err := elevate(); err != nil {
				errs = append(errs, err)
			}
			row = append(row, tbl.yesNo(d.IsAccessible(nil)))
		}
		tbl.addRow(row...)
	}

	for _, c := range classes {
		if slices.Contains(ip.Kinds, kindConstructors) {
			for ctor := range ff.ctors.Matches(c.Constructors()) {
				add(c, ctor, signature(ctor), func() error { return ip.elevate(ctor) })
			}
		}
		if slices.Contains(ip.Kinds, kindFields) {
			for f := range ff.fields.Matches(c.Fields()) {
				typ := f.Type().String()
				if f.IsStatic() {
					typ = "static " + typ
				}
				add(c, f, typ, func() error { return ip.elevate(f) })
			}
		}
		if slices.Contains(ip.Kinds, kindParameters) {
			for ctor := range c.Constructors() {
				for prm := range ff.params.Matches(ctor.Parameters()) {
					add(c, prm, prm.Type().String(), func() error { return ip.elevate(prm) })
				}
			}
		}
	}

	if cnt == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no declarations matched")
	} else {
		tbl.render()
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d declaration(s) matched\n", cnt)
	}
	logger.Verbose("filters:", ff.ctors, ff.fields, ff.params)

	return errors.Join(errs...)
}

type accessible[T any] interface {
	MakeAccessible(any) T
	RequireAccessible(any) (T, error)
}

func elevate[T any](ip *inspectParams, d accessible[T]) error {
	if ip.Require {
		_, err := d.RequireAccessible(nil)
		return err
	}
	d.MakeAccessible(nil)
	return nil
}

func (ip *inspectParams) elevate(d any) error {
	switch d := d.(type) {
	case mirror.IConstructor:
		return elevate[mirror.IConstructor](ip, d)
	case mirror.IField:
		return elevate[mirror.IField](ip, d)
	case mirror.IParameter:
		return elevate[mirror.IParameter](ip, d)
	}
	return nil
}

func (t *table) yesNo(ok bool) cell {
	if ok {
		return t.colored("yes", color.FgGreen)
	}
	return t.colored("no", color.FgRed)
}

// Returns constructor signature, e.g. func(string, int) *Server.
func signature(c mirror.IConstructor) string {
	return strings.ReplaceAll(c.Func().Type().String(), "main.", "")
}
