package shaderstd

// SourceRoot is the directory all shader source paths are relative to.
const SourceRoot = "assets/shaders"

// Names double as the GLSL variable names, so they must match the sources.

var shaderTypeNames = [numShaderTypes]string{
	CWLVTransformationWithSolidColor:                        "cwl_v_transformation_with_solid_color",
	CWLVTransformationWithTextures:                          "cwl_v_transformation_with_textures",
	TransformVWithTextures:                                  "transform_v_with_textures",
	CWLVTransformationWithTexturesAmbientLighting:           "cwl_v_transformation_with_textures_ambient_lighting",
	CWLVTransformationWithTexturesAmbientAndDiffuseLighting: "cwl_v_transformation_with_textures_ambient_and_diffuse_lighting",
	Skybox:                                 "skybox",
	AbsolutePositionWithSolidColor:         "absolute_position_with_solid_color",
	Text:                                   "text",
	AbsolutePositionWithColoredVertex:      "absolute_position_with_colored_vertex",
	TransformVWithSignedDistanceFieldText:  "transform_v_with_signed_distance_field_text",
	CWLVTransformationWithBonesAndTextures: "cwl_v_transformation_with_bones_and_textures",
	CWLVTransformationWithPackedTextures:   "cwl_v_transformation_with_packed_textures",
}

var attributeNames = [numAttributes]string{
	AttrXYZPosition:                   "xyz_position",
	AttrXYPosition:                    "xy_position",
	AttrPassthroughTextureCoordinate:  "passthrough_texture_coordinate",
	AttrPassthroughRGBColor:           "passthrough_rgb_color",
	AttrPassthroughNormal:             "passthrough_normal",
	AttrPassthroughPackedTextureIndex: "passthrough_packed_texture_index",
	AttrBoneIDs:                       "bone_ids",
	AttrBoneWeights:                   "bone_weights",
	AttrTextureCoordinate:             "texture_coordinate",
	AttrTextureCoordinate3D:           "texture_coordinate_3d",
	AttrRGBColor:                      "rgb_color",
	AttrWorldSpacePosition:            "world_space_position",
	AttrNormal:                        "normal",
	AttrPackedTextureIndex:            "packed_texture_index",
}

var uniformNames = [numUniforms]string{
	UniformCameraToClip:            "camera_to_clip",
	UniformWorldToCamera:           "world_to_camera",
	UniformLocalToWorld:            "local_to_world",
	UniformTransform:               "transform",
	UniformTextureSampler:          "texture_sampler",
	UniformSkyboxTextureUnit:       "skybox_texture_unit",
	UniformTextTextureUnit:         "text_texture_unit",
	UniformPackedTextureArray:      "packed_texture_array",
	UniformColor:                   "color",
	UniformRGBColor:                "rgb_color",
	UniformRGBAColor:               "rgba_color",
	UniformAmbientLightStrength:    "ambient_light_strength",
	UniformAmbientLightColor:       "ambient_light_color",
	UniformDiffuseLightPosition:    "diffuse_light_position",
	UniformBoneAnimationTransforms: "bone_animation_transforms",
	UniformCharWidth:               "char_width",
	UniformEdgeTransitionWidth:     "edge_transition_width",
}

type attributeInfo struct {
	stage  Stage
	glsl   string
	layout Layout // zero for varyings
}

// Vertex inputs are bound from separate tightly packed buffers, hence
// zero stride and offset.
var attributeTable = [numAttributes]attributeInfo{
	AttrXYZPosition:                   {StageVertexInput, "vec3", Layout{Components: 3, Type: Float}},
	AttrXYPosition:                    {StageVertexInput, "vec2", Layout{Components: 2, Type: Float}},
	AttrPassthroughTextureCoordinate:  {StageVertexInput, "vec2", Layout{Components: 2, Type: Float}},
	AttrPassthroughRGBColor:           {StageVertexInput, "vec3", Layout{Components: 3, Type: Float}},
	AttrPassthroughNormal:             {StageVertexInput, "vec3", Layout{Components: 3, Type: Float}},
	AttrPassthroughPackedTextureIndex: {StageVertexInput, "int", Layout{Components: 1, Type: Int}},
	AttrBoneIDs:                       {StageVertexInput, "ivec4", Layout{Components: 4, Type: Int}},
	AttrBoneWeights:                   {StageVertexInput, "vec4", Layout{Components: 4, Type: Float}},

	AttrTextureCoordinate:   {stage: StageVarying, glsl: "vec2"},
	AttrTextureCoordinate3D: {stage: StageVarying, glsl: "vec3"},
	AttrRGBColor:            {stage: StageVarying, glsl: "vec3"},
	AttrWorldSpacePosition:  {stage: StageVarying, glsl: "vec3"},
	AttrNormal:              {stage: StageVarying, glsl: "vec3"},
	AttrPackedTextureIndex:  {stage: StageVarying, glsl: "int"},
}

// UniformType is the declared GLSL type of a uniform.
type UniformType struct {
	GLSL  string `yaml:"glsl"`
	Array bool   `yaml:"array,omitempty"`
}

func (t UniformType) String() string {
	if t.Array {
		return t.GLSL + "[]"
	}
	return t.GLSL
}

// UniformColor has never had a declared type and is not used by any shader.
var uniformTypes = [numUniforms]UniformType{
	UniformCameraToClip:            {GLSL: "mat4"},
	UniformWorldToCamera:           {GLSL: "mat4"},
	UniformLocalToWorld:            {GLSL: "mat4"},
	UniformTransform:               {GLSL: "mat4"},
	UniformTextureSampler:          {GLSL: "sampler2D"},
	UniformSkyboxTextureUnit:       {GLSL: "samplerCube"},
	UniformTextTextureUnit:         {GLSL: "sampler2D"},
	UniformPackedTextureArray:      {GLSL: "sampler2DArray"},
	UniformRGBColor:                {GLSL: "vec3"},
	UniformRGBAColor:               {GLSL: "vec4"},
	UniformAmbientLightStrength:    {GLSL: "float"},
	UniformAmbientLightColor:       {GLSL: "vec3"},
	UniformDiffuseLightPosition:    {GLSL: "vec3"},
	UniformBoneAnimationTransforms: {GLSL: "mat4", Array: true},
	UniformCharWidth:               {GLSL: "float"},
	UniformEdgeTransitionWidth:     {GLSL: "float"},
}

func src(name string) string { return SourceRoot + "/" + name }

var locations = [numShaderTypes]Location{
	CWLVTransformationWithSolidColor: {
		Vertex:   src("CWL_v_transformation.vert"),
		Fragment: src("solid_color.frag"),
	},
	CWLVTransformationWithTextures: {
		Vertex:   src("CWL_v_transformation_with_texture_coordinate_passthrough.vert"),
		Fragment: src("textured.frag"),
	},
	TransformVWithTextures: {
		Vertex:   src("transform_v_with_texture_coordinate_passthrough.vert"),
		Fragment: src("textured.frag"),
	},
	CWLVTransformationWithTexturesAmbientLighting: {
		Vertex:   src("CWL_v_transformation_with_texture_coordinate_passthrough.vert"),
		Fragment: src("textured_with_ambient_lighting.frag"),
	},
	CWLVTransformationWithTexturesAmbientAndDiffuseLighting: {
		Vertex:   src("CWL_v_transformation_with_texture_coordinate_and_normal_passthrough.vert"),
		Fragment: src("textured_with_ambient_and_diffuse_lighting.frag"),
	},
	Skybox: {
		Vertex:   src("cubemap.vert"),
		Fragment: src("cubemap.frag"),
	},
	AbsolutePositionWithSolidColor: {
		Vertex:   src("absolute_position.vert"),
		Fragment: src("solid_color.frag"),
	},
	Text: {
		Vertex:   src("text.vert"),
		Fragment: src("text.frag"),
	},
	AbsolutePositionWithColoredVertex: {
		Vertex:   src("colored_vertices.vert"),
		Fragment: src("colored_vertices.frag"),
	},
	TransformVWithSignedDistanceFieldText: {
		Vertex:   src("transform_v_with_texture_coordinate_passthrough.vert"),
		Fragment: src("signed_distance_field_text.frag"),
	},
	CWLVTransformationWithBonesAndTextures: {
		Vertex:   src("CWL_v_transformation_with_bones_and_texture_coordinate_passthrough.vert"),
		Fragment: src("textured.frag"),
	},
	CWLVTransformationWithPackedTextures: {
		Vertex:   src("CWL_v_transformation_with_packed_texture_passthrough.vert"),
		Fragment: src("packed_textures.frag"),
	},
}

// Order matters: an attribute's position is its binding location.
var usedAttributes = [numShaderTypes][]Attribute{
	CWLVTransformationWithSolidColor:                        {AttrXYZPosition},
	CWLVTransformationWithTextures:                          {AttrXYZPosition, AttrPassthroughTextureCoordinate},
	TransformVWithTextures:                                  {AttrXYZPosition, AttrPassthroughTextureCoordinate},
	CWLVTransformationWithTexturesAmbientLighting:           {AttrXYZPosition, AttrPassthroughTextureCoordinate},
	CWLVTransformationWithTexturesAmbientAndDiffuseLighting: {AttrXYZPosition, AttrPassthroughNormal, AttrPassthroughTextureCoordinate},
	Skybox:                                 {AttrXYZPosition},
	AbsolutePositionWithSolidColor:         {AttrXYZPosition},
	Text:                                   {AttrPassthroughTextureCoordinate, AttrXYPosition},
	AbsolutePositionWithColoredVertex:      {AttrXYZPosition, AttrPassthroughRGBColor},
	TransformVWithSignedDistanceFieldText:  {AttrXYZPosition, AttrPassthroughTextureCoordinate},
	CWLVTransformationWithBonesAndTextures: {AttrXYZPosition, AttrPassthroughTextureCoordinate, AttrBoneIDs, AttrBoneWeights},
	CWLVTransformationWithPackedTextures:   {AttrXYZPosition, AttrPassthroughTextureCoordinate, AttrPassthroughPackedTextureIndex},
}

var cwl = []Uniform{UniformLocalToWorld, UniformWorldToCamera, UniformCameraToClip}

func with(base []Uniform, extra ...Uniform) []Uniform {
	out := make([]Uniform, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}

var usedUniforms = [numShaderTypes][]Uniform{
	CWLVTransformationWithSolidColor: with(cwl, UniformRGBAColor),
	CWLVTransformationWithTextures:   with(cwl, UniformTextureSampler),
	TransformVWithTextures:           {UniformTransform, UniformTextureSampler},
	CWLVTransformationWithTexturesAmbientLighting: with(cwl,
		UniformTextureSampler, UniformAmbientLightStrength, UniformAmbientLightColor),
	CWLVTransformationWithTexturesAmbientAndDiffuseLighting: with(cwl,
		UniformTextureSampler, UniformAmbientLightStrength, UniformAmbientLightColor, UniformDiffuseLightPosition),
	Skybox:                            {UniformWorldToCamera, UniformCameraToClip, UniformSkyboxTextureUnit},
	AbsolutePositionWithSolidColor:    {UniformRGBAColor},
	Text:                              {UniformCameraToClip, UniformTextTextureUnit, UniformRGBColor},
	AbsolutePositionWithColoredVertex: {},
	TransformVWithSignedDistanceFieldText: {UniformTransform, UniformTextTextureUnit, UniformRGBColor,
		UniformCharWidth, UniformEdgeTransitionWidth},
	CWLVTransformationWithBonesAndTextures: with(cwl, UniformTextureSampler, UniformBoneAnimationTransforms),
	CWLVTransformationWithPackedTextures:   with(cwl, UniformPackedTextureArray),
}
