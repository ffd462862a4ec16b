package phong3d

var (
	Debug    = false // set to true to collect per-category ray statistics
	Progress = false // set to true to print [PROGRESS] lines while rendering
	UseCull  = true  // set to false to skip the world bounds pre-cull in nearest hit searches
)
