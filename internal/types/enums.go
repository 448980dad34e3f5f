// Package types provides type definitions for structured data used throughout the signature-customizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "slices"

// Alignment is the vertical alignment of the signature image against the text block
type Alignment string

// ImageForm is the frame shape of the signature image
type ImageForm string

// BorderStyle is the line style of the image border
type BorderStyle string

// FontFamily is the typeface used for all signature text
type FontFamily string

// FontWeight is the CSS font weight of the title line, kept as a string literal
type FontWeight string

// SocialMedia classifies a social link for UI pickers
type SocialMedia string

const (
	AlignTop    Alignment = "top"
	AlignCenter Alignment = "center"
	AlignBottom Alignment = "bottom"
)

const (
	FormCircle    ImageForm = "circle"
	FormSquare    ImageForm = "square"
	FormRectangle ImageForm = "rectangle"
)

const (
	BorderSolid  BorderStyle = "solid"
	BorderDashed BorderStyle = "dashed"
	BorderDotted BorderStyle = "dotted"
)

const (
	FontInter  FontFamily = "inter"
	FontSF     FontFamily = "sf"
	FontRoboto FontFamily = "roboto"
	FontArial  FontFamily = "arial"
)

const (
	Weight400 FontWeight = "400"
	Weight500 FontWeight = "500"
	Weight600 FontWeight = "600"
	Weight700 FontWeight = "700"
)

const (
	SocialTwitter   SocialMedia = "twitter"
	SocialInstagram SocialMedia = "instagram"
	SocialGitHub    SocialMedia = "github"
	SocialLinkedIn  SocialMedia = "linkedin"
	SocialPortfolio SocialMedia = "portfolio"
)

// Alignments lists every Alignment in declaration order.
var Alignments = []Alignment{AlignTop, AlignCenter, AlignBottom}

// ImageForms lists every ImageForm in declaration order.
var ImageForms = []ImageForm{FormCircle, FormSquare, FormRectangle}

// BorderStyles lists every BorderStyle in declaration order.
var BorderStyles = []BorderStyle{BorderSolid, BorderDashed, BorderDotted}

// FontFamilies lists every FontFamily in declaration order.
var FontFamilies = []FontFamily{FontInter, FontSF, FontRoboto, FontArial}

// FontWeights lists every FontWeight in declaration order.
var FontWeights = []FontWeight{Weight400, Weight500, Weight600, Weight700}

// SocialMedias lists every SocialMedia in declaration order.
var SocialMedias = []SocialMedia{SocialTwitter, SocialInstagram, SocialGitHub, SocialLinkedIn, SocialPortfolio}

// Membership is an exact, case-sensitive match against the literal set.

// Valid reports whether a is one of the declared alignments.
func (a Alignment) Valid() bool { return slices.Contains(Alignments, a) }

// Valid reports whether f is one of the declared image forms.
func (f ImageForm) Valid() bool { return slices.Contains(ImageForms, f) }

// Valid reports whether s is one of the declared border styles.
func (s BorderStyle) Valid() bool { return slices.Contains(BorderStyles, s) }

// Valid reports whether f is one of the declared font families.
func (f FontFamily) Valid() bool { return slices.Contains(FontFamilies, f) }

// Valid reports whether w is one of the declared font weights.
func (w FontWeight) Valid() bool { return slices.Contains(FontWeights, w) }

// Valid reports whether m is one of the declared social media types.
func (m SocialMedia) Valid() bool { return slices.Contains(SocialMedias, m) }
