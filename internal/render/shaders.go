package render

// The trail shader consumes the per-instance layout produced by
// trail.Buffer.AppendInstanceData. Locations 0-1 carry the base cylinder mesh;
// locations 3-7 carry the instance record: origin+length, rotation quaternion,
// color, birth time, lifetime. Offsets must stay in lockstep with
// trail.FloatsPerInstance.
const trailVertexShader = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 3) in vec4 aPosLen;
layout (location = 4) in vec4 aRot;
layout (location = 5) in vec3 aColor;
layout (location = 6) in float aBirth;
layout (location = 7) in float aLifetime;

uniform mat4 uView;
uniform mat4 uProj;
uniform float uNow;

out vec3 vColor;
out float vAlpha;

vec3 quatRotate(vec4 q, vec3 v) {
    return v + 2.0 * cross(q.xyz, cross(q.xyz, v) + q.w * v);
}

void main() {
    // The mesh points along +Y with its base at the origin; stretch it to the
    // segment length, then orient it along the travel direction.
    vec3 local = vec3(aPos.x, aPos.y * aPosLen.w, aPos.z);
    vec3 world = aPosLen.xyz + quatRotate(aRot, local);
    gl_Position = uProj * uView * vec4(world, 1.0);

    vColor = aColor;
    vAlpha = max(0.0, 1.0 - (uNow - aBirth) / aLifetime);
}
`

const trailFragmentShader = `
#version 410 core
in vec3 vColor;
in float vAlpha;
out vec4 fragColor;

void main() {
    if (vAlpha <= 0.0) {
        discard;
    }
    fragColor = vec4(vColor, vAlpha);
}
`

// Flat color shader for the particle head spheres.
const headVertexShader = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uMVP;

void main() {
    gl_Position = uMVP * vec4(aPos, 1.0);
}
`

const headFragmentShader = `
#version 410 core
uniform vec3 uColor;
out vec4 fragColor;

void main() {
    fragColor = vec4(uColor, 1.0);
}
`
