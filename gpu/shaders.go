// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// Vertex attribute locations, matching [shape.Vertex].
const (
	posLoc    = 0
	normalLoc = 1
	uvLoc     = 2
	colorLoc  = 3
)

const vertexShader = `
#version 410 core

layout(location = 0) in vec3 pos;
layout(location = 1) in vec3 normal;
layout(location = 2) in vec2 uv;
layout(location = 3) in vec4 color;

uniform mat4 projection;
uniform mat4 modelView;
uniform mat3 normalMatrix;

out vec3 eyePos;
out vec3 eyeNormal;
out vec2 texCoord;
out vec4 vertColor;

void main() {
	vec4 ep = modelView * vec4(pos, 1.0);
	eyePos = ep.xyz;
	eyeNormal = normalMatrix * normal;
	texCoord = uv;
	vertColor = color;
	gl_Position = projection * ep;
}
` + "\x00"

// The fragment shader evaluates one positional light with the color
// material model: the vertex color is both the ambient and the diffuse
// reflectance. Back faces use the flipped normal.
const fragmentShader = `
#version 410 core

in vec3 eyePos;
in vec3 eyeNormal;
in vec2 texCoord;
in vec4 vertColor;

uniform vec3 lightPos;
uniform vec3 lightAmbient;
uniform vec3 lightDiffuse;
uniform vec3 sceneAmbient;
uniform bool useTexture;
uniform sampler2D tex;

out vec4 fragColor;

void main() {
	vec3 n = normalize(eyeNormal);
	if (!gl_FrontFacing) {
		n = -n;
	}
	vec3 l = normalize(lightPos - eyePos);
	float diff = max(dot(n, l), 0.0);
	vec3 lit = (sceneAmbient + lightAmbient + lightDiffuse * diff) * vertColor.rgb;
	vec4 c = vec4(min(lit, vec3(1.0)), vertColor.a);
	if (useTexture) {
		c *= texture(tex, texCoord);
	}
	fragColor = c;
}
` + "\x00"
