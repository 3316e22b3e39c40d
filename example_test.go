package htmlserializer_test

import (
	"bytes"
	"fmt"

	"github.com/njchilds90/htmlserializer"
)

func ExampleSanitize() {
	input := `<p>Hello <b>world</b>!</p>`
	clean, _ := htmlserializer.Sanitize(input, htmlserializer.DefaultOptions())
	fmt.Println(clean)
	// Output: <p>Hello &lt;b&gt;world&lt;/b&gt;!</p>
}

func ExampleSerializer() {
	var buf bytes.Buffer
	s := htmlserializer.New(&buf, htmlserializer.DefaultOptions())
	p := htmlserializer.Name{Space: htmlserializer.NamespaceHTML, Local: "p"}
	_ = s.StartElement(p, nil)
	_ = s.WriteText("1 < 2 & 3")
	_ = s.EndElement(p)
	fmt.Println(buf.String())
	// Output: <p>1 &lt; 2 &amp; 3</p>
}

func ExampleChildrenOnly() {
	// Seeding the scope with a raw-text root makes top-level text
	// behave as if it were inside that element.
	root := htmlserializer.Name{Space: htmlserializer.NamespaceHTML, Local: "script"}
	opts := htmlserializer.DefaultOptions()
	opts.Scope = htmlserializer.ChildrenOnly(&root)

	var buf bytes.Buffer
	s := htmlserializer.New(&buf, opts)
	_ = s.WriteText("if (a < b) go()")
	fmt.Println(buf.String())
	// Output: if (a < b) go()
}
