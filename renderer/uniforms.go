package renderer

// Uniform names shared by the GLSL programs and the passes.
const (
	UniformModel        = "model"
	UniformView         = "view"
	UniformProjection   = "projection"
	UniformNormalMatrix = "normalMatrix"
	UniformLightDir     = "lightDir"
	UniformLightPos     = "lightPosition"
	UniformLightColor   = "lightColor"
	UniformLightType    = "lightType"
	UniformFogDensity   = "fogDensity"
	UniformLightSpace   = "lightSpaceTrMatrix"
	UniformShadowMap    = "shadowMap"
)
