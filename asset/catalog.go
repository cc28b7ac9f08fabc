package asset

// DefaultCatalog is the built-in portfolio catalog in YAML
// Skills feed the orbit engine; projects feed the featured carousel and the filtered list
const DefaultCatalog = `
hub:
  title: IoT
  subtitle: Automation

# === Skills universe ===
# angle: degrees from +X toward screen-down, radius/size in layout units
skills:
  - { id: Arduino,    angle: 0,   radius: 180, size: 60, color: "#F7DF1E" }
  - { id: ESP32,      angle: 45,  radius: 220, size: 50, color: "#3178C6" }
  - { id: React.js,   angle: 90,  radius: 200, size: 70, color: "#61DAFB" }
  - { id: MQTT,       angle: 135, radius: 190, size: 60, color: "#FFFFFF" }
  - { id: Node-RED,   angle: 180, radius: 210, size: 55, color: "#00ADD8" }
  - { id: Laravel,    angle: 225, radius: 170, size: 55, color: "#FF2D20" }
  - { id: MySQL,      angle: 270, radius: 230, size: 50, color: "#4479A1" }
  - { id: Networking, angle: 315, radius: 195, size: 50, color: "#336791" }
  - { id: Express,    angle: 20,  radius: 300, size: 80, color: "#336791" }

# === Projects ===
featured:
  - id: 1
    title: IoT Automatic Toll Gate Prototype
    description: Arduino toll barrier that reads RFID cards and opens the gate automatically.
    tags: [Arduino, RFID, IoT, Embedded]
    live: https://youtube.com/shorts/tr9p7oaX5UM
    source: https://github.com/zhafif05/Tol-otomatis.git
  - id: 2
    title: IoT Monitoring Dashboard
    description: Local web dashboard for temperature, humidity and CO/CO2/NH4 readings sent by ESP8266 over Mosquitto MQTT.
    tags: [ESP8266, MQTT, IoT, Web Dashboard]
    live: https://www.youtube.com/shorts/u6opS8lj0EU
    source: https://github.com/zhafif05/dashboar-monitoring.git
  - id: 3
    title: Milkfish Harvest Robot - ROBOCO DARJO
    description: Competition robot that picks up and moves balls standing in for harvested milkfish.
    tags: [Robotics, Embedded System, Control, Competition]
    live: https://youtu.be/38EABrCGsgc
    source: https://github.com/zhafif05/ROBOCO-DARJO.git

projects:
  - { id: 4,  title: IoT Automatic Toll Gate Prototype,  category: iot, tags: [Arduino, RFID, IoT] }
  - { id: 5,  title: IoT Monitoring Dashboard,           category: iot, tags: [ESP8266, MQTT, Laravel] }
  - { id: 6,  title: IoT Automatic Fan,                  category: iot, tags: [Arduino, Temperature Sensor, IoT] }
  - { id: 7,  title: Laravel Shop Website,               category: web, tags: [Laravel, HTML, CSS, MySQL] }
  - { id: 8,  title: Smart Home Dashboard,               category: iot, tags: [IoT, ESP8266, MQTT, AI] }
  - { id: 9,  title: AI Song Recommendation Website,     category: web, tags: [AI, Gemini API, Spotify API] }
  - { id: 10, title: Milkfish Harvest Robot - ROBOCO DARJO, category: iot, tags: [Robotics, Embedded System, Control, Competition] }
`
