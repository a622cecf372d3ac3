// Package gen turns name lists into the qualified-name declarations of the
// document engine.
//
// # Pipeline
//
//	svgtags.in, svgattrs.in, xlinkattrs.in
//	        ↓
//	   Lists (raw names, comments and blanks dropped)
//	        ↓
//	   Resolve + SpecialCases
//	        ↓
//	   Names (SVGNames, HTMLNames, XLinkNames)
//	        ↓
//	   Emitter (declaration, definition, initializer per entry)
//	        ↓
//	   Assembler (SVGNames.h, XLinkNames.h, SVGNames.cpp)
//	        ↓
//	   Writer (staged, then renamed into place)
//
// # Naming
//
// A raw name maps to a C++ identifier by replacing '-' with '_' and
// appending "Tag" or "Attr". Its lookup key is the enumeration constant the
// engine defines for it: "ID_" for tags, "ATTR_" for attributes and
// "ATTR_XLINK_" for linking attributes, followed by the upper-cased symbol.
//
// # Special cases
//
// Two names do not follow the rules above. The tag "text" has no element id
// of its own and is built from the local name of ATTR_TEXT. The attribute
// "class" belongs to the HTML names and is always defined there. Both are
// entries of DefaultSpecialCases and can be extended through the
// configuration file.
//
// # Features
//
// Optional behavior is controlled by feature flags:
//
//	cfg, err := gen.NewConfig(
//	    gen.WithTarget("svg"),
//	    gen.WithFeatures(gen.FeatureDiagnostics, gen.FeatureGoBind),
//	)
//
// See AllFeatures for the list.
package gen
