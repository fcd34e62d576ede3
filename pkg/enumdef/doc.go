// Package enumdef declares enumerations from YAML documents.
//
// A document names the enumeration and lists its members in order. Each
// member may carry a display label and a free-form metadata record; the
// labels and records become the label and metadata tables of the resulting
// enum.Type:
//
//	name: status
//	members:
//	  - name: ACTIVE
//	    value: 1
//	    label: Active
//	    data: {weight: 10}
//	  - name: DONE
//	    value: 2
//	    label: Done
//	    data: {weight: 20}
//
// # Usage
//
// When the value type is known at compile time use Parse or LoadFile:
//
//	status, err := enumdef.LoadFile[int](ctx, "enums/status.yaml")
//
// Tooling that does not know the value type uses ParseAny, which picks
// enum.Type[int] when every value is an integer and enum.Type[string] when
// every value is a string, and LoadFS, which declares every YAML file found in
// a directory of an fs.FS (for example an embed.FS) and registers the results:
//
//	//go:embed enums/*.yaml
//	var enumFiles embed.FS
//
//	reg := enum.NewRegistry()
//	_, err := enumdef.LoadFS(ctx, enumFiles, "enums", enumdef.WithRegistry(reg))
//
// # Error Handling
//
// Decoding problems are reported as ErrFailedToParseYAML, structural problems
// (missing values, mixed value types, rejected declarations) as
// ErrInvalidDefinition joined with the underlying cause.
package enumdef
