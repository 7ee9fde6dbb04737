//go:build ignore
// +build ignore

package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

// Field represents a single field in a packet struct
type Field struct {
	Name      string // The Struct field name (e.g., "ProtocolVersion")
	FieldType string // The high-level type (e.g., "VarInt", "PrefixedArray", "Optional")
	WriteFn   string
	ReadFn    string
}

// Registration is one @packet:<direction>,<phase>,<code> line
type Registration struct {
	Struct    string
	Direction string // Go identifier, e.g. "Serverbound"
	Phase     string // Go identifier, e.g. "LoginPhase"
	Code      string // as written, e.g. "0x03"

	dirOrder, phaseOrder int
	code                 int64
}

// GeneratedStruct represents a struct found in the source code marked for generation
type GeneratedStruct struct {
	Name              string
	Fields            []Field
	GenRead, GenWrite bool
}

type File struct {
	Name    string
	Structs []GeneratedStruct
}

var directions = map[string]int{
	"serverbound": 0,
	"clientbound": 1,
}

var phases = map[string]int{
	"handshake":     0,
	"status":        1,
	"login":         2,
	"configuration": 3,
	"play":          4,
}

func goIdent(s string) string {
	return strings.ToUpper(s[:1]) + s[1:]
}

func parseRegistration(structName, opts string) (Registration, error) {
	parts := strings.Split(opts, ",")
	if len(parts) != 3 {
		return Registration{}, fmt.Errorf("%s: want @packet:<direction>,<phase>,<code>, got %q", structName, opts)
	}
	dir, phase, code := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2])

	d, ok := directions[dir]
	if !ok {
		return Registration{}, fmt.Errorf("%s: unknown direction %q", structName, dir)
	}
	p, ok := phases[phase]
	if !ok {
		return Registration{}, fmt.Errorf("%s: unknown phase %q", structName, phase)
	}
	n, err := strconv.ParseInt(code, 0, 32)
	if err != nil || n < 0 {
		return Registration{}, fmt.Errorf("%s: bad code %q", structName, code)
	}

	return Registration{
		Struct:     structName,
		Direction:  goIdent(dir),
		Phase:      goIdent(phase) + "Phase",
		Code:       code,
		dirOrder:   d,
		phaseOrder: p,
		code:       n,
	}, nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run gen_packet_codec.go -- path/to/dir")
		os.Exit(1)
	}

	targetDir := os.Args[len(os.Args)-1] // Take the last argument as the directory
	fset := token.NewFileSet()
	var parsedFiles []File
	var registrations []Registration
	var pkgName string

	filePaths, _ := filepath.Glob(filepath.Join(targetDir, "*.go"))

	for _, filePath := range filePaths {
		// Skip generated files and tests to avoid double parsing
		base := filepath.Base(filePath)
		if strings.HasPrefix(base, "zz_generated") || strings.HasSuffix(base, "_test.go") {
			continue
		}

		node, err := parser.ParseFile(fset, filePath, nil, parser.ParseComments)
		if err != nil {
			panic(err)
		}

		if pkgName == "" {
			pkgName = node.Name.Name
		}

		var fileStructs []GeneratedStruct

		// Walk through top-level declarations
		for _, decl := range node.Decls {
			gen, ok := decl.(*ast.GenDecl)

			// filter for only type declarations with comments
			if !ok || gen.Tok != token.TYPE || gen.Doc == nil {
				continue
			}

			var isGen bool
			var genRead, genWrite bool
			var packetOpts []string

			// Iterate through comments to find @gen and @packet lines
			for _, comment := range gen.Doc.List {
				text := comment.Text
				if _, opts, found := strings.Cut(text, "@gen:"); found {
					isGen = true
					for _, opt := range strings.Split(strings.TrimSpace(opts), ",") {
						switch strings.TrimSpace(opt) {
						case "r":
							genRead = true
						case "w":
							genWrite = true
						}
					}
				} else if _, opts, found := strings.Cut(text, "@packet:"); found {
					packetOpts = append(packetOpts, strings.TrimSpace(opts))
				}
			}

			// filter for types with @gen in doc comment
			if !isGen {
				continue
			}

			for _, spec := range gen.Specs {
				tspec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				// type assertion for struct type
				structType, ok := tspec.Type.(*ast.StructType)
				if !ok {
					continue
				}

				for _, opts := range packetOpts {
					reg, err := parseRegistration(tspec.Name.Name, opts)
					if err != nil {
						panic(err)
					}
					registrations = append(registrations, reg)
				}

				var fields []Field
				for _, field := range structType.Fields.List {
					for _, name := range field.Names {

						// Get the raw tag string
						rawTag := ""
						if field.Tag != nil {
							// The Value is a BasicLit (string literal), strip the quotes
							rawTag = field.Tag.Value
							if len(rawTag) > 1 && rawTag[0] == '`' && rawTag[len(rawTag)-1] == '`' {
								rawTag = rawTag[1 : len(rawTag)-1] // Remove backticks
							}
						}

						// Use reflect.StructTag to parse the raw string
						parsedTag := reflect.StructTag(rawTag)
						fieldType := parsedTag.Get("field")
						writeFn := ""
						readFn := ""

						innerType := parsedTag.Get("inner")
						if len(innerType) > 0 {
							writeFn = "Write" + innerType
							readFn = "Read" + innerType
						} else {
							writeFn = parsedTag.Get("write")
							readFn = parsedTag.Get("read")
						}

						if fieldType == "" {
							continue // Skip fields without the "field" tag
						}

						fields = append(fields, Field{
							Name:      name.Name,
							FieldType: fieldType,
							WriteFn:   writeFn,
							ReadFn:    readFn,
						})
					}
				}

				fileStructs = append(fileStructs, GeneratedStruct{
					Name:     tspec.Name.Name,
					Fields:   fields,
					GenRead:  genRead,
					GenWrite: genWrite,
				})
			}

		}
		if len(fileStructs) > 0 {
			parsedFiles = append(parsedFiles, File{
				Name:    filepath.Base(filePath),
				Structs: fileStructs,
			})
		}
	}

	sort.SliceStable(registrations, func(i, j int) bool {
		a, b := registrations[i], registrations[j]
		if a.phaseOrder != b.phaseOrder {
			return a.phaseOrder < b.phaseOrder
		}
		if a.dirOrder != b.dirOrder {
			return a.dirOrder < b.dirOrder
		}
		return a.code < b.code
	})

	const tmpl = `// Code generated by gen_packet_codec.go; DO NOT EDIT.
package {{.PkgName}}

import (
	"io"
)

// ProtocolEntries lists every @packet registration in this package.
func ProtocolEntries() []Entry {
	return []Entry{
{{- range .Registrations}}
		{Direction: {{.Direction}}, Phase: {{.Phase}}, Code: {{.Code}}, New: func() Packet { return &{{.Struct}}{} }},
{{- end}}
	}
}
{{range .Files}}
// Source: {{.Name}}
{{range .Structs}}
{{- if .GenWrite}}
func (p {{.Name}}) Encode(w io.Writer) (err error) {
{{- range .Fields}}
	{{- if .WriteFn}}
	if err = Write{{.FieldType}}(w, p.{{.Name}}, {{.WriteFn}}); err != nil { return }
	{{- else}}
	if err = Write{{.FieldType}}(w, p.{{.Name}}); err != nil { return }
	{{- end}}
{{- end}}
	return
}
{{- end}}
{{if .GenRead}}
func (p *{{.Name}}) Decode(r *FrameReader) (err error) {
{{- range .Fields}}
	{{- if .ReadFn}}
	if p.{{.Name}}, err = Read{{.FieldType}}(r, {{.ReadFn}}); err != nil { return }
	{{- else}}
	if p.{{.Name}}, err = Read{{.FieldType}}(r); err != nil { return }
	{{- end}}
{{- end}}
	return nil
}
{{- end}}
{{end}}
{{- end}}
`

	t := template.Must(template.New("code").Parse(tmpl))
	data := struct {
		PkgName       string
		Files         []File
		Registrations []Registration
	}{
		PkgName:       pkgName,
		Files:         parsedFiles,
		Registrations: registrations,
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		panic(err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		panic(err)
	}

	outFile := filepath.Join(targetDir, "zz_generated_codec.go")
	if err := os.WriteFile(outFile, src, 0o644); err != nil {
		panic(err)
	}

	fmt.Printf("Generated %s for package %s\n", outFile, pkgName)
}
