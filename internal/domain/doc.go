// Package domain contains the core model for wcagcontrast.
//
// The domain is presentation-agnostic: it does not depend on terminals, cobra,
// or output encodings. Colors are parsed here, luminance and contrast are
// computed here, and compliance is classified here. Adapters in infra/ and ui/
// render the results.
package domain
