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

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"m4o.io/mvt/model"
)

func TestDefaultScalingIdentity(t *testing.T) {
	assert.Equal(t, 5.0, model.DefaultScaling.Apply(5))
	assert.Equal(t, -3.0, model.DefaultScaling.Apply(-3))
}

func TestScalingApply(t *testing.T) {
	s := model.Scaling{Offset: 10, Multiplier: 0.5, Base: 100}
	assert.Equal(t, 100.0+10.0+2.5, s.Apply(5))
}
