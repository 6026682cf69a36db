package compute

const vertexShader = `#version 330 core
in vec2 vertex;

void main()
{
	gl_Position = vec4(vertex, 0.0, 1.0);
}
` + "\x00"

// fragmentShader is the per-pixel kernel and palette at single precision.
// gl_FragCoord is flipped into raster coordinates and the half-pixel
// offset removed, so it samples the same points as the cpu backend.
const fragmentShader = `#version 330 core
uniform vec2 resolution;
uniform vec2 position;
uniform float zoom;
uniform int iterations;
uniform int periodicity;
uniform int bw;

out vec4 fragColor;

vec4 ramp(int i)
{
	int size = iterations / 6;
	if (size == 0)
		return vec4(0.5, 0.5, 0.5, 1.0);
	int band = i / size;
	float f = float(i - band * size) / float(size);
	switch (band) {
	case 0:  return vec4(f, 0.0, 1.0, 1.0);
	case 1:  return vec4(1.0, 0.0, 1.0 - f, 1.0);
	case 2:  return vec4(1.0, f, 0.0, 1.0);
	case 3:  return vec4(1.0 - f, 1.0, 0.0, 1.0);
	case 4:  return vec4(0.0, 1.0, f, 1.0);
	case 5:  return vec4(0.0, 1.0 - f, 1.0, 1.0);
	default: return vec4(0.5, 0.5, 0.5, 1.0);
	}
}

void main()
{
	vec2 pixel = vec2(gl_FragCoord.x - 0.5, resolution.y - gl_FragCoord.y - 0.5);
	vec2 c = position + (pixel - resolution * 0.5) * zoom;

	int i = 0, j = 0;
	vec2 z = vec2(0.0);
	vec2 oldZ = vec2(0.0);
	while (i < iterations && dot(z, z) <= 4.0) {
		z = vec2(z.x * z.x - z.y * z.y + c.x, 2.0 * z.x * z.y + c.y);
		i++;

		if (z == oldZ) {
			i = iterations;
			break;
		}

		if (j + 1 >= periodicity) {
			oldZ = z;
			j = 0;
		} else {
			j++;
		}
	}

	if (i >= iterations) {
		fragColor = vec4(0.0);
	} else if (bw != 0) {
		fragColor = vec4(1.0);
	} else {
		fragColor = ramp(i);
	}
}
` + "\x00"

// quad is a full-viewport triangle strip.
var quad = []float32{
	-1, -1,
	1, -1,
	-1, 1,
	1, 1,
}
