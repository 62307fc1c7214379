package tree

const (
	connectorLast  = "└─ "
	connectorChild = "├─ "
	indentLast     = "   "
	indentChild    = "│  "
	folderMarker   = "📁"
	fileMarker     = "📄"
	elision        = "…"
)

func connector(last bool) string {
	if last {
		return connectorLast
	}
	return connectorChild
}

func indent(last bool) string {
	if last {
		return indentLast
	}
	return indentChild
}

func marker(isDir bool) string {
	if isDir {
		return folderMarker
	}
	return fileMarker
}
