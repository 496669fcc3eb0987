package shaderstd

import "fmt"

// ShaderType identifies a linked shader program variant.
type ShaderType uint8

// Shader program variants.
// CWL stands for the camera-to-clip, world-to-camera, local-to-world
// transformation chain applied in the vertex stage.
const (
	CWLVTransformationWithSolidColor ShaderType = iota
	CWLVTransformationWithTextures
	TransformVWithTextures
	CWLVTransformationWithTexturesAmbientLighting
	CWLVTransformationWithTexturesAmbientAndDiffuseLighting
	Skybox
	AbsolutePositionWithSolidColor
	Text
	AbsolutePositionWithColoredVertex
	TransformVWithSignedDistanceFieldText
	CWLVTransformationWithBonesAndTextures
	CWLVTransformationWithPackedTextures

	numShaderTypes
)

// Attribute identifies a per-vertex shader input or an inter-stage varying.
type Attribute uint8

// Vertex attribute variables. Passthrough inputs are forwarded unmodified
// to the next stage under the name without the prefix.
const (
	AttrXYZPosition Attribute = iota
	AttrXYPosition
	AttrPassthroughTextureCoordinate
	AttrPassthroughRGBColor
	AttrPassthroughNormal
	AttrPassthroughPackedTextureIndex
	AttrBoneIDs
	AttrBoneWeights

	// Fragment stage inputs.
	AttrTextureCoordinate
	AttrTextureCoordinate3D
	AttrRGBColor
	AttrWorldSpacePosition
	AttrNormal
	AttrPackedTextureIndex

	numAttributes
)

// Uniform identifies a shader-global input.
type Uniform uint8

// Uniform variables.
const (
	// Transformations
	UniformCameraToClip Uniform = iota
	UniformWorldToCamera
	UniformLocalToWorld
	UniformTransform

	// Textures
	UniformTextureSampler
	UniformSkyboxTextureUnit
	UniformTextTextureUnit
	UniformPackedTextureArray

	// Colors
	UniformColor
	UniformRGBColor
	UniformRGBAColor

	// Lighting
	UniformAmbientLightStrength
	UniformAmbientLightColor
	UniformDiffuseLightPosition

	// Animation
	UniformBoneAnimationTransforms

	// Text
	UniformCharWidth
	UniformEdgeTransitionWidth

	numUniforms
)

// Stage tells where an attribute variable is consumed.
type Stage uint8

const (
	// StageVertexInput attributes are read from a vertex buffer and have a Layout.
	StageVertexInput Stage = iota
	// StageVarying attributes are interpolated outputs of an earlier stage.
	StageVarying
)

func (s Stage) String() string {
	switch s {
	case StageVertexInput:
		return "vertex_input"
	case StageVarying:
		return "varying"
	default:
		return fmt.Sprintf("Stage(%d)", uint8(s))
	}
}

// Identifier is implemented by ShaderType, Attribute and Uniform.
type Identifier interface {
	fmt.Stringer
	valid() bool
}

func (t ShaderType) valid() bool { return t < numShaderTypes }
func (a Attribute) valid() bool  { return a < numAttributes }
func (u Uniform) valid() bool    { return u < numUniforms }

func (t ShaderType) String() string {
	if !t.valid() {
		return fmt.Sprintf("ShaderType(%d)", uint8(t))
	}
	return shaderTypeNames[t]
}

func (a Attribute) String() string {
	if !a.valid() {
		return fmt.Sprintf("Attribute(%d)", uint8(a))
	}
	return attributeNames[a]
}

func (u Uniform) String() string {
	if !u.valid() {
		return fmt.Sprintf("Uniform(%d)", uint8(u))
	}
	return uniformNames[u]
}
