package gl

// Buffer bits for Clear.
const (
	DepthBufferBit   Enum = 0x0100
	StencilBufferBit Enum = 0x0400
	ColorBufferBit   Enum = 0x4000
)

// Primitive modes.
const (
	Points        Enum = 0x0000
	Lines         Enum = 0x0001
	LineLoop      Enum = 0x0002
	LineStrip     Enum = 0x0003
	Triangles     Enum = 0x0004
	TriangleStrip Enum = 0x0005
	TriangleFan   Enum = 0x0006
)

// Blend factors and equations.
const (
	Zero                Enum = 0x0000
	One                 Enum = 0x0001
	SrcColor            Enum = 0x0300
	OneMinusSrcColor    Enum = 0x0301
	SrcAlpha            Enum = 0x0302
	OneMinusSrcAlpha    Enum = 0x0303
	DstAlpha            Enum = 0x0304
	OneMinusDstAlpha    Enum = 0x0305
	DstColor            Enum = 0x0306
	OneMinusDstColor    Enum = 0x0307
	SrcAlphaSaturate    Enum = 0x0308
	FuncAdd             Enum = 0x8006
	Min                 Enum = 0x8007
	Max                 Enum = 0x8008
	FuncSubtract        Enum = 0x800A
	FuncReverseSubtract Enum = 0x800B
)

// Comparison functions.
const (
	Never    Enum = 0x0200
	Less     Enum = 0x0201
	Equal    Enum = 0x0202
	Lequal   Enum = 0x0203
	Greater  Enum = 0x0204
	Notequal Enum = 0x0205
	Gequal   Enum = 0x0206
	Always   Enum = 0x0207
)

// Faces and winding.
const (
	Front        Enum = 0x0404
	Back         Enum = 0x0405
	FrontAndBack Enum = 0x0408
	CW           Enum = 0x0900
	CCW          Enum = 0x0901
)

// Capabilities for Enable / Disable.
const (
	CullFace              Enum = 0x0B44
	DepthTest             Enum = 0x0B71
	StencilTest           Enum = 0x0B90
	Dither                Enum = 0x0BD0
	Blend                 Enum = 0x0BE2
	ScissorTest           Enum = 0x0C11
	SampleAlphaToCoverage Enum = 0x809E
)

// Error codes.
const (
	NoError                     Enum = 0
	InvalidEnum                 Enum = 0x0500
	InvalidValue                Enum = 0x0501
	InvalidOperation            Enum = 0x0502
	OutOfMemory                 Enum = 0x0505
	InvalidFramebufferOperation Enum = 0x0506
)

// GetString and GetIntegerv / GetFloatv parameters.
const (
	Vendor                        Enum = 0x1F00
	Renderer                      Enum = 0x1F01
	Version                       Enum = 0x1F02
	Extensions                    Enum = 0x1F03
	ShadingLanguageVersion        Enum = 0x8B8C
	ViewportParam                 Enum = 0x0BA2
	MaxTextureSize                Enum = 0x0D33
	MaxViewportDims               Enum = 0x0D3A
	AliasedPointSizeRange         Enum = 0x846D
	AliasedLineWidthRange         Enum = 0x846E
	MaxTextureLODBias             Enum = 0x84FD
	TextureMaxAnisotropy          Enum = 0x84FE
	MaxTextureMaxAnisotropy       Enum = 0x84FF
	MaxElementsIndices            Enum = 0x80E9
	MaxDrawBuffers                Enum = 0x8824
	MaxTextureImageUnits          Enum = 0x8872
	MaxCombinedTextureImageUnits  Enum = 0x8B4D
	ImplementationColorReadType   Enum = 0x8B9A
	ImplementationColorReadFormat Enum = 0x8B9B
	MaxColorAttachments           Enum = 0x8CDF
	PackAlignment                 Enum = 0x0D05
	UnpackAlignment               Enum = 0x0CF5
	GenerateMipmapHint            Enum = 0x8192
	Nicest                        Enum = 0x1102
)

// Data types.
const (
	Byte              Enum = 0x1400
	UnsignedByte      Enum = 0x1401
	Short             Enum = 0x1402
	UnsignedShort     Enum = 0x1403
	Int               Enum = 0x1404
	UnsignedInt       Enum = 0x1405
	Float             Enum = 0x1406
	HalfFloat         Enum = 0x140B
	HalfFloatOES      Enum = 0x8D61
	UnsignedShort4444 Enum = 0x8033
	UnsignedShort5551 Enum = 0x8034
	UnsignedShort565  Enum = 0x8363
	UnsignedInt248    Enum = 0x84FA
)

// Pixel formats.
const (
	DepthComponent Enum = 0x1902
	Red            Enum = 0x1903
	Alpha          Enum = 0x1906
	RGB            Enum = 0x1907
	RGBA           Enum = 0x1908
	Luminance      Enum = 0x1909
	BGRA           Enum = 0x80E1
	RG             Enum = 0x8227
	DepthStencil   Enum = 0x84F9
)

// Compressed internal formats.
const (
	CompressedRGBS3TCDXT1  Enum = 0x83F0
	CompressedRGBAS3TCDXT1 Enum = 0x83F1
	CompressedRGBAS3TCDXT3 Enum = 0x83F2
	CompressedRGBAS3TCDXT5 Enum = 0x83F3
	ETC1RGB8               Enum = 0x8D64
	CompressedRGB8ETC2     Enum = 0x9274
	CompressedRGBA8ETC2EAC Enum = 0x9278
)

// Textures.
const (
	Texture2D               Enum = 0x0DE1
	TextureCubeMap          Enum = 0x8513
	TextureCubeMapPositiveX Enum = 0x8515
	Texture0                Enum = 0x84C0
	TextureMagFilter        Enum = 0x2800
	TextureMinFilter        Enum = 0x2801
	TextureWrapS            Enum = 0x2802
	TextureWrapT            Enum = 0x2803
	TextureWrapR            Enum = 0x8072
	Nearest                 Enum = 0x2600
	Linear                  Enum = 0x2601
	NearestMipmapNearest    Enum = 0x2700
	LinearMipmapNearest     Enum = 0x2701
	NearestMipmapLinear     Enum = 0x2702
	LinearMipmapLinear      Enum = 0x2703
	Repeat                  Enum = 0x2901
	ClampToEdge             Enum = 0x812F
	MirroredRepeat          Enum = 0x8370
)

// Buffers.
const (
	ArrayBuffer        Enum = 0x8892
	ElementArrayBuffer Enum = 0x8893
	StreamDraw         Enum = 0x88E0
	StaticDraw         Enum = 0x88E4
	DynamicDraw        Enum = 0x88E8
)

// Shaders and programs.
const (
	FragmentShader         Enum = 0x8B30
	VertexShader           Enum = 0x8B31
	CompileStatus          Enum = 0x8B81
	LinkStatus             Enum = 0x8B82
	InfoLogLength          Enum = 0x8B84
	ActiveUniforms         Enum = 0x8B86
	ActiveUniformMaxLength Enum = 0x8B87
	ActiveAttributes       Enum = 0x8B89
)

// Uniform types reported by GetActiveUniform.
const (
	FloatVec2       Enum = 0x8B50
	FloatVec3       Enum = 0x8B51
	FloatVec4       Enum = 0x8B52
	IntVec2         Enum = 0x8B53
	IntVec3         Enum = 0x8B54
	IntVec4         Enum = 0x8B55
	Bool            Enum = 0x8B56
	BoolVec2        Enum = 0x8B57
	BoolVec3        Enum = 0x8B58
	BoolVec4        Enum = 0x8B59
	FloatMat2       Enum = 0x8B5A
	FloatMat3       Enum = 0x8B5B
	FloatMat4       Enum = 0x8B5C
	Sampler2D       Enum = 0x8B5E
	SamplerCube     Enum = 0x8B60
	UnsignedIntVec2 Enum = 0x8DC6
	UnsignedIntVec3 Enum = 0x8DC7
	UnsignedIntVec4 Enum = 0x8DC8
)

// Framebuffers.
const (
	FramebufferTarget                      Enum = 0x8D40
	ColorAttachment0                       Enum = 0x8CE0
	DepthAttachment                        Enum = 0x8D00
	StencilAttachment                      Enum = 0x8D20
	DepthStencilAttachment                 Enum = 0x821A
	FramebufferComplete                    Enum = 0x8CD5
	FramebufferIncompleteAttachment        Enum = 0x8CD6
	FramebufferIncompleteMissingAttachment Enum = 0x8CD7
	FramebufferIncompleteDimensions        Enum = 0x8CD9
	FramebufferUnsupported                 Enum = 0x8CDD
	None                                   Enum = 0
)
