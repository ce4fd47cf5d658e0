// Package material implements the BSDF sample/eval/pdf subsystem: cosine
// weighted diffuse, GGX microfacet specular with Fresnel-Schlick and Smith
// shadowing, and dielectric refraction with Schlick reflectance.
package material

import "github.com/df07/spherefield/pkg/core"

// Kind tags which BSDF lobe a Material dispatches to.
type Kind int

const (
	Diffuse Kind = iota
	Metal
	Physical
	Dielectric
	Emissive
)

// Material is a tagged, immutable record backing all five material kinds.
// Fields unused by a given Kind are left zero. Materials are stored by
// value in a scene's material table and referenced by index, never by
// pointer — this is the indexed-record design spec.md's design notes
// favor over a virtual-dispatch material hierarchy.
type Material struct {
	Kind      Kind
	BaseColor core.Vec3
	Roughness float32
	Metallic  float32
	IOR       float32
	Emission  core.Vec3
}

// NewDiffuse returns a Lambertian material with the given albedo.
func NewDiffuse(albedo core.Vec3) Material {
	return Material{Kind: Diffuse, BaseColor: albedo}
}

// NewMetal returns a GGX conductor material. Metal and Physical share the
// same BSDF code path (a Metal is a Physical with Metallic pinned to 1);
// the distinct Kind exists only so scenes can name the common case.
func NewMetal(baseColor core.Vec3, roughness float32) Material {
	return Material{Kind: Metal, BaseColor: baseColor, Roughness: roughness, Metallic: 1}
}

// NewPhysical returns a rough conductor+dielectric mixture material: a
// GGX specular lobe Fresnel-blended over a Lambertian diffuse lobe.
func NewPhysical(baseColor core.Vec3, roughness, metallic float32) Material {
	return Material{Kind: Physical, BaseColor: baseColor, Roughness: roughness, Metallic: metallic}
}

// NewDielectric returns a perfect (delta) dielectric material with the
// given index of refraction.
func NewDielectric(ior float32) Material {
	return Material{Kind: Dielectric, IOR: ior}
}

// NewEmissive returns a material that only emits, never scatters.
func NewEmissive(emission core.Vec3) Material {
	return Material{Kind: Emissive, Emission: emission}
}

// Table is a scene's immutable material table, indexed by HitRecord's
// MaterialIndex.
type Table []Material
