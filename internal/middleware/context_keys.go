package middleware

import "github.com/gin-gonic/gin"

// editorIDKey is the key used to store the authenticated editor's ID in the
// request context. Using a custom type prevents collisions.
const editorIDKey = contextKey("editorID")

// GetEditorIDFromContext retrieves the authenticated editor ID from the Gin
// context. It returns the editor ID and a boolean indicating if it was found.
func GetEditorIDFromContext(c *gin.Context) (string, bool) {
	editorIDVal := c.Request.Context().Value(editorIDKey)
	if editorIDVal == nil {
		return "", false
	}

	editorID, ok := editorIDVal.(string)
	if !ok {
		return "", false
	}
	return editorID, true
}
