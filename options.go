// Copyright 2017-25 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mvt

import "m4o.io/mvt/internal/decoder"

// DecodeOption configures DecodeTile.
type DecodeOption func(*decoder.Config)

// WithMaxComplexValueDepth overrides the recursion limit applied to
// nested list/map attribute values. The default is 64.
func WithMaxComplexValueDepth(n int) DecodeOption {
	return func(c *decoder.Config) { c.MaxComplexValueDepth = n }
}

func buildDecodeConfig(opts []DecodeOption) decoder.Config {
	cfg := decoder.DefaultConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
