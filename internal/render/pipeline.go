package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/san-kum/attractor/internal/trail"
)

// TrailPipeline draws every trail segment in a single instanced call. The
// cylinder mesh lives in a static VBO; per-segment data is re-uploaded each
// frame from the trail buffer.
type TrailPipeline struct {
	program uint32
	vao     uint32
	meshVBO uint32
	meshEBO uint32

	instanceVBO uint32
	instanceCap int
	scratch     []float32

	indexCount int32

	locView int32
	locProj int32
	locNow  int32
}

// NewTrailPipeline compiles the trail shaders and uploads the unit cylinder.
// Must be called on the thread holding the GL context.
func NewTrailPipeline() (*TrailPipeline, error) {
	program, err := newProgram(trailVertexShader, trailFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("trail pipeline: %w", err)
	}

	verts, indices := CylinderMesh(0.12, 1.0, 32)

	p := &TrailPipeline{
		program:    program,
		indexCount: int32(len(indices)),
		locView:    gl.GetUniformLocation(program, gl.Str("uView\x00")),
		locProj:    gl.GetUniformLocation(program, gl.Str("uProj\x00")),
		locNow:     gl.GetUniformLocation(program, gl.Str("uNow\x00")),
	}

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.meshVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.meshVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, vertexStride*4, gl.PtrOffset(12))

	gl.GenBuffers(1, &p.meshEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.meshEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &p.instanceVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.instanceVBO)

	stride := int32(trail.InstanceStride)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 4, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.VertexAttribDivisor(3, 1)
	gl.EnableVertexAttribArray(4)
	gl.VertexAttribPointer(4, 4, gl.FLOAT, false, stride, gl.PtrOffset(16))
	gl.VertexAttribDivisor(4, 1)
	gl.EnableVertexAttribArray(5)
	gl.VertexAttribPointer(5, 3, gl.FLOAT, false, stride, gl.PtrOffset(32))
	gl.VertexAttribDivisor(5, 1)
	gl.EnableVertexAttribArray(6)
	gl.VertexAttribPointer(6, 1, gl.FLOAT, false, stride, gl.PtrOffset(44))
	gl.VertexAttribDivisor(6, 1)
	gl.EnableVertexAttribArray(7)
	gl.VertexAttribPointer(7, 1, gl.FLOAT, false, stride, gl.PtrOffset(48))
	gl.VertexAttribDivisor(7, 1)

	gl.BindVertexArray(0)
	return p, nil
}

// Draw uploads the buffer's segments and issues one instanced draw. An upload
// failure skips the frame instead of aborting the render loop.
func (p *TrailPipeline) Draw(buf *trail.Buffer, view, proj mgl32.Mat4, now float32) error {
	p.scratch = buf.AppendInstanceData(p.scratch[:0])
	count := len(p.scratch) / trail.FloatsPerInstance
	if count == 0 {
		return nil
	}

	gl.UseProgram(p.program)
	gl.UniformMatrix4fv(p.locView, 1, false, &view[0])
	gl.UniformMatrix4fv(p.locProj, 1, false, &proj[0])
	gl.Uniform1f(p.locNow, now)

	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.instanceVBO)
	if count > p.instanceCap {
		for p.instanceCap < count {
			if p.instanceCap == 0 {
				p.instanceCap = 16384
			} else {
				p.instanceCap *= 2
			}
		}
		gl.BufferData(gl.ARRAY_BUFFER, p.instanceCap*trail.InstanceStride, nil, gl.DYNAMIC_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(p.scratch)*4, gl.Ptr(p.scratch))
	if errno := gl.GetError(); errno != gl.NO_ERROR {
		gl.BindVertexArray(0)
		return fmt.Errorf("instance upload failed: gl error 0x%04x", errno)
	}

	// Faded tails overlap heavily; writing depth would make blend order
	// visible.
	gl.DepthMask(false)
	gl.DrawElementsInstanced(gl.TRIANGLES, p.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0), int32(count))
	gl.DepthMask(true)

	gl.BindVertexArray(0)
	return nil
}

// Close releases GL resources. Safe to call once after the render loop exits.
func (p *TrailPipeline) Close() {
	gl.DeleteBuffers(1, &p.instanceVBO)
	gl.DeleteBuffers(1, &p.meshEBO)
	gl.DeleteBuffers(1, &p.meshVBO)
	gl.DeleteVertexArrays(1, &p.vao)
	gl.DeleteProgram(p.program)
}

// HeadPipeline draws a small sphere at each particle's current position.
type HeadPipeline struct {
	program    uint32
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	locMVP   int32
	locColor int32
}

func NewHeadPipeline() (*HeadPipeline, error) {
	program, err := newProgram(headVertexShader, headFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("head pipeline: %w", err)
	}

	verts, indices := SphereMesh(0.3, 12, 16)

	p := &HeadPipeline{
		program:    program,
		indexCount: int32(len(indices)),
		locMVP:     gl.GetUniformLocation(program, gl.Str("uMVP\x00")),
		locColor:   gl.GetUniformLocation(program, gl.Str("uColor\x00")),
	}

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, vertexStride*4, gl.PtrOffset(12))

	gl.GenBuffers(1, &p.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return p, nil
}

// Draw renders one head sphere at the given world position.
func (p *HeadPipeline) Draw(pos, color mgl32.Vec3, view, proj mgl32.Mat4) {
	mvp := proj.Mul4(view).Mul4(mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()))

	gl.UseProgram(p.program)
	gl.UniformMatrix4fv(p.locMVP, 1, false, &mvp[0])
	gl.Uniform3f(p.locColor, color.X(), color.Y(), color.Z())

	gl.BindVertexArray(p.vao)
	gl.DrawElements(gl.TRIANGLES, p.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func (p *HeadPipeline) Close() {
	gl.DeleteBuffers(1, &p.ebo)
	gl.DeleteBuffers(1, &p.vbo)
	gl.DeleteVertexArrays(1, &p.vao)
	gl.DeleteProgram(p.program)
}
