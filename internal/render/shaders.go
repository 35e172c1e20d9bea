package render

// Vertex attributes match raylib meshes: vertexPosition, vertexTexCoord, vertexNormal.
const meshVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = normalize(mat3(matModel) * vertexNormal);
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

// lambertFS lights a textured body from a single point light plus ambient.
const lambertFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 lightPos;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform vec3 ambient;
out vec4 finalColor;
void main() {
  vec4 tint = texture(texture0, fragTexCoord) * colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 rgb = tint.rgb * (ambient + lightColor * lightIntensity * NdotL);
  finalColor = vec4(rgb, tint.a);
}
`

// surfaceFS animates the sun texture: the phase scrolls the lookup, the amplitude
// ripples it and brightness lifts the result.
const surfaceFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform float time;
uniform float amplitude;
uniform float brightness;
uniform float noise;
uniform vec2 resolution;
out vec4 finalColor;
void main() {
  vec2 uv = fragTexCoord;
  uv.x += time * 0.05;
  float ripple = sin(uv.y * 40.0 + time * 3.0) * cos(uv.x * 40.0 - time * 2.0);
  uv += ripple * amplitude * 0.0005;
  vec3 base = texture(texture0, uv).rgb * colDiffuse.rgb;
  vec3 hot = base * (1.0 + brightness * 0.1) + vec3(0.25, 0.1, 0.0) * max(ripple, 0.0);
  finalColor = vec4(hot, 1.0);
}
`

// glowFS is a rim glow on the back faces of a larger sphere, drawn additively.
const glowFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec3 viewVector;
uniform float glowFactor;
uniform float glowPower;
uniform float vNormMultiplier;
uniform float time;
uniform float bumpScale;
uniform float bumpSpeed;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal) * vNormMultiplier;
  vec3 V = normalize(viewVector);
  float corona = 1.0 + sin(fragTexCoord.x * bumpScale + time * bumpSpeed) * 0.05;
  float intensity = pow(max(glowFactor - dot(N, V), 0.0), glowPower) * corona;
  finalColor = vec4(vec3(1.0, 0.6, 0.15) * intensity, 1.0);
}
`
