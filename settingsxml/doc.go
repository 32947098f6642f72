// Package settingsxml reads and writes settings documents in the Maven
// settings.xml format.
//
// Reading happens in two passes: the input is parsed into a dom.Node tree
// that remembers line and column of every element, then the tree is decoded
// into a settings.Settings. In strict mode the decoder rejects unknown or
// duplicated elements and malformed scalars; in lenient mode it skips them.
// Input that is not well-formed XML fails in both modes.
//
//	s, err := settingsxml.Read(r, settingsxml.ReadOptions{Strict: true})
//	var perr *settingsxml.ParseError
//	if errors.As(err, &perr) {
//	    s, err = settingsxml.Read(retry, settingsxml.ReadOptions{})
//	}
//
// Writing is deterministic, so a document written by Write and read back in
// lenient mode equals the written document on every serialized field.
package settingsxml
