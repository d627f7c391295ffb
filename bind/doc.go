// Package bind populates a formkit form from posted form values.
//
// It is the server round-trip companion to the snapshot model: an HTTP
// handler parses the request body, hands the resulting value map to Bind,
// and reads validation outcomes off the form's next snapshot. The package
// performs no I/O itself and accepts any map[string][]string, so it works
// identically with url.Values from net/http and with values decoded
// elsewhere.
//
// # Usage
//
//	if err := r.ParseForm(); err != nil { ... }
//	if err := bind.Bind(form, r.PostForm); err != nil {
//	    // a value failed to convert, or a field kind is not bindable
//	}
//	form.ValidateAll()
//	if form.IsValid() { ... }
//
// Built-in conversions cover Field[string], Field[int], Field[int64],
// Field[float64], Field[bool] (lenient: on/yes/1 and off/no/0), and
// Group[string], whose options are selected by posted payload values.
// Custom field kinds join by implementing Binder.
package bind
